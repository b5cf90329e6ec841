package models

// Guide is a bookable local guide from the static catalog
type Guide struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	City            string   `json:"city"`
	Specialization  string   `json:"specialization"`
	Languages       []string `json:"languages"`
	ExperienceYears int      `json:"experience_years"`
	Rating          float64  `json:"rating"`
	HourlyRateINR   int      `json:"hourly_rate_inr"`
	Phone           string   `json:"phone"`
	Bio             string   `json:"bio"`
}

// GuideBooking is a stored booking request against a catalog guide
type GuideBooking struct {
	ID            string `json:"id" db:"id"`
	GuideID       string `json:"guide_id" db:"guide_id"`
	GuideName     string `json:"guide_name" db:"guide_name"`
	GuideCity     string `json:"guide_city" db:"guide_city"`
	TouristName   string `json:"tourist_name" db:"tourist_name"`
	TouristPhone  string `json:"tourist_phone" db:"tourist_phone"`
	PreferredDate string `json:"preferred_date" db:"preferred_date"`
	PreferredTime string `json:"preferred_time" db:"preferred_time"`
	DurationHours int    `json:"duration_hours" db:"duration_hours"`
	Notes         string `json:"notes,omitempty" db:"notes"`
	Status        string `json:"status" db:"status"`
	CreatedAt     int64  `json:"created_at" db:"created_at"`
}

// GuideCatalog returns the built-in guide roster. Guides are static content;
// only bookings against them are persisted.
func GuideCatalog() []Guide {
	return []Guide{
		{
			ID:              "guide_jaipur_raj",
			Name:            "Raj Singh",
			City:            "Jaipur",
			Specialization:  "Heritage Forts + Old City Walks",
			Languages:       []string{"English", "Hindi", "French"},
			ExperienceYears: 9,
			Rating:          4.9,
			HourlyRateINR:   1400,
			Phone:           "+91-98765-12001",
			Bio:             "Licensed Rajasthan heritage guide focused on Amber, City Palace, and cultural storytelling.",
		},
		{
			ID:              "guide_jaipur_priya",
			Name:            "Priya Sharma",
			City:            "Jaipur",
			Specialization:  "Museums, Architecture, and Food Lanes",
			Languages:       []string{"English", "Hindi", "Spanish"},
			ExperienceYears: 7,
			Rating:          4.8,
			HourlyRateINR:   1300,
			Phone:           "+91-98765-12002",
			Bio:             "Curates compact Jaipur routes combining history, local markets, and evening cultural spots.",
		},
		{
			ID:              "guide_jaipur_aamir",
			Name:            "Aamir Khan",
			City:            "Jaipur",
			Specialization:  "Sunrise/Sunset Photo Tours",
			Languages:       []string{"English", "Hindi", "Urdu"},
			ExperienceYears: 6,
			Rating:          4.7,
			HourlyRateINR:   1150,
			Phone:           "+91-98765-12003",
			Bio:             "Specialist in Nahargarh, Jal Mahal and night-lit landmarks with low-crowd photography windows.",
		},
		{
			ID:              "guide_jaipur_meera",
			Name:            "Meera Joshi",
			City:            "Jaipur",
			Specialization:  "Family-Friendly Guided Tours",
			Languages:       []string{"English", "Hindi", "Gujarati"},
			ExperienceYears: 8,
			Rating:          4.8,
			HourlyRateINR:   1250,
			Phone:           "+91-98765-12004",
			Bio:             "Known for relaxed, educational city tours suitable for families and first-time visitors.",
		},
		{
			ID:              "guide_delhi_arjun",
			Name:            "Arjun Verma",
			City:            "New Delhi",
			Specialization:  "Monuments + Street Culture",
			Languages:       []string{"English", "Hindi"},
			ExperienceYears: 10,
			Rating:          4.7,
			HourlyRateINR:   1450,
			Phone:           "+91-98765-12011",
			Bio:             "Handles full-day Delhi circuits from heritage sites to culinary hotspots.",
		},
		{
			ID:              "guide_mumbai_neha",
			Name:            "Neha Patil",
			City:            "Mumbai",
			Specialization:  "Coastal + Colonial History Trails",
			Languages:       []string{"English", "Hindi", "Marathi"},
			ExperienceYears: 8,
			Rating:          4.8,
			HourlyRateINR:   1500,
			Phone:           "+91-98765-12021",
			Bio:             "Provides structured South Mumbai walking routes with crowd-aware scheduling.",
		},
	}
}
