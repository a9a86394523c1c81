package catalog

// Service is a bookable clinic service with its posted price.
type Service struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// StaffMember is a clinic staff profile for the public roster.
type StaffMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

var services = []Service{
	{Title: "Wellness Checkup", Description: "Routine physical exam and health check.", Price: 500.0},
	{Title: "Vaccination", Description: "Core vaccines and booster shots.", Price: 800.0},
	{Title: "Surgery", Description: "Minor surgical procedures.", Price: 3000.0},
	{Title: "Deworming", Description: "Eliminates intestinal worms and parasites.", Price: 350.0},
	{Title: "Dental Cleaning", Description: "Removes tartar and improves oral health.", Price: 1200.0},
	{Title: "Grooming", Description: "Basic grooming, nail trimming, and bathing.", Price: 600.0},
}

var staff = []StaffMember{
	{Name: "Jan Paul E. De Quiroz", Role: "Senior Veterinarian", Bio: "Expert in animal health and wellness with years of dedicated service."},
	{Name: "Danniel John Morales", Role: "Veterinarian", Bio: "Specializes in surgery and compassionate pet care."},
	{Name: "Zuriel Pecadero", Role: "Help Desk", Bio: "Helps you with your inquiries."},
	{Name: "Kim Tomotorgo", Role: "Wellness Veterinarian", Bio: "Focused on Wellness Checkups and ensuring pets maintain optimal health."},
	{Name: "Vanessa Ofrancia", Role: "Veterinary Nurse", Bio: "Specializes in Vaccination and preventive care to keep pets safe from diseases."},
	{Name: "Irish Rocha", Role: "Veterinary Surgical Nurse", Bio: "Assists in Surgery and post-operative care with precision and compassion."},
	{Name: "Ellemar Pundavela", Role: "Preventive Care Specialist", Bio: "Specializes in Deworming and preventive pet treatments."},
	{Name: "Ruffaina Hamsain", Role: "Dental Care Specialist", Bio: "Expert in Dental Cleaning and oral care for pets."},
	{Name: "Rose Ann Tolentino", Role: "Grooming Specialist", Bio: "Specializes in Grooming and maintaining pet hygiene."},
}

var priceByTitle = func() map[string]float64 {
	m := make(map[string]float64, len(services))
	for _, s := range services {
		m[s.Title] = s.Price
	}
	return m
}()

// Services returns the bookable service catalog.
func Services() []Service {
	return services
}

// Staff returns the public staff roster.
func Staff() []StaffMember {
	return staff
}

// Price looks up the posted price for a service title. Unknown services
// price at 0.
func Price(title string) float64 {
	return priceByTitle[title]
}

// IsService reports whether the title names a bookable service.
func IsService(title string) bool {
	_, ok := priceByTitle[title]
	return ok
}
