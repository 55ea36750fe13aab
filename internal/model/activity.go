package model

// Activity represents one extracurricular offering. The activity name is the
// directory key on the wire, so it is not repeated inside the serialized
// record.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"` // descriptive only, never enforced
	Participants    []string `json:"participants"`     // insertion order = signup order
}

// Clone returns a deep copy with its own participants slice.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = append([]string(nil), a.Participants...)
	return &c
}

// HasParticipant reports whether email is already on the roster.
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// SeedActivities returns the fixed roster the directory is populated with at
// process start.
func SeedActivities() []*Activity {
	return []*Activity{
		{
			Name:            "Basketball",
			Description:     "Play basketball and develop athletic skills",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Soccer",
			Description:     "Competitive soccer training and matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"jordan@mergington.edu"},
		},
	}
}
