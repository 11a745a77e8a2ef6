package projects

// SeedProjects returns the bundled demo feed. The service is in-memory only,
// so a fresh process starts from these two entries unless seeding is disabled.
func SeedProjects() []*Project {
	return []*Project{
		{
			ID:            "gov-001",
			Title:         "Smart City Road Widening - MG Road",
			Description:   "Expanding the existing 4-lane road to a 6-lane highway with integrated smart lighting and drainage systems.",
			Location:      "Bengaluru, Karnataka",
			Status:        StatusOngoing,
			Budget:        45000000,
			AllocatedDate: "2023-10-15",
			Deadline:      "2024-12-30",
			Contractor: Contractor{
				Name:         "InfraBuild South Ltd.",
				Rating:       4.2,
				PastProjects: 15,
			},
			Tags:      []string{"Infrastructure", "Urban Planning", "Smart City"},
			Votes:     1240,
			Upvotes:   890,
			Downvotes: 350,
			BudgetBreakdown: []BudgetBreakdown{
				{Category: "Material", Amount: 25000000},
				{Category: "Labor", Amount: 10000000},
				{Category: "Technology", Amount: 5000000},
				{Category: "Logistics", Amount: 5000000},
			},
			Timeline: []TimelinePhase{
				{Phase: "Land Acquisition", Status: "Completed", Date: "2023-09-01"},
				{Phase: "Excavation", Status: "In Progress", Date: "2024-02-15"},
				{Phase: "Paving", Status: "Pending", Date: "2024-08-01"},
			},
		},
		{
			ID:            "gov-002",
			Title:         "Purified Water Plant Installation",
			Description:   "Setting up 10 automated community water purification units to provide RO water at nominal costs.",
			Location:      "Nagpur, Maharashtra",
			Status:        StatusApproved,
			Budget:        8500000,
			AllocatedDate: "2024-01-10",
			Deadline:      "2024-06-15",
			Contractor: Contractor{
				Name:         "AquaPure Solutions",
				Rating:       3.8,
				PastProjects: 5,
			},
			Tags:      []string{"Sanitation", "Public Health", "Utility"},
			Votes:     560,
			Upvotes:   520,
			Downvotes: 40,
			BudgetBreakdown: []BudgetBreakdown{
				{Category: "Equipment", Amount: 6000000},
				{Category: "Civil Works", Amount: 1500000},
				{Category: "Operation Setup", Amount: 1000000},
			},
			Timeline: []TimelinePhase{
				{Phase: "Site Survey", Status: "Completed", Date: "2024-01-20"},
				{Phase: "Equipment Procurement", Status: "In Progress", Date: "2024-03-01"},
			},
		},
	}
}
