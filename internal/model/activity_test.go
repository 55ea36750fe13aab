package model

import (
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// Clone Tests
// ============================================================================

func TestActivity_Clone_CopiesAllFields(t *testing.T) {
	t.Parallel()

	a := &Activity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"sam@mergington.edu"},
	}

	c := a.Clone()

	if c.Name != a.Name || c.Description != a.Description || c.Schedule != a.Schedule {
		t.Errorf("clone fields differ: %+v vs %+v", c, a)
	}
	if c.MaxParticipants != a.MaxParticipants {
		t.Errorf("expected max_participants %d, got %d", a.MaxParticipants, c.MaxParticipants)
	}
	if len(c.Participants) != 1 || c.Participants[0] != "sam@mergington.edu" {
		t.Errorf("unexpected participants: %v", c.Participants)
	}
}

func TestActivity_Clone_IndependentParticipants(t *testing.T) {
	t.Parallel()

	a := &Activity{
		Name:         "Chess Club",
		Participants: []string{"sam@mergington.edu"},
	}

	c := a.Clone()
	c.Participants = append(c.Participants, "pat@mergington.edu")
	c.Participants[0] = "other@mergington.edu"

	if len(a.Participants) != 1 {
		t.Errorf("mutating clone changed original length: %v", a.Participants)
	}
	if a.Participants[0] != "sam@mergington.edu" {
		t.Errorf("mutating clone changed original entry: %v", a.Participants)
	}
}

// ============================================================================
// HasParticipant Tests
// ============================================================================

func TestActivity_HasParticipant(t *testing.T) {
	t.Parallel()

	a := &Activity{
		Participants: []string{"sam@mergington.edu", "pat@mergington.edu"},
	}

	if !a.HasParticipant("sam@mergington.edu") {
		t.Error("expected sam@mergington.edu to be found")
	}
	if a.HasParticipant("nobody@mergington.edu") {
		t.Error("did not expect nobody@mergington.edu to be found")
	}
	if a.HasParticipant("SAM@mergington.edu") {
		t.Error("participant matching should be exact, not case-insensitive")
	}
}

// ============================================================================
// Serialization Tests
// ============================================================================

func TestActivity_MarshalJSON_ExcludesName(t *testing.T) {
	t.Parallel()

	a := &Activity{
		Name:            "Basketball",
		Description:     "Play basketball and develop athletic skills",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{"alex@mergington.edu"},
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	if strings.Contains(body, "Basketball") {
		t.Errorf("name should not appear inside the record, got: %s", body)
	}
	for _, field := range []string{"description", "schedule", "max_participants", "participants"} {
		if !strings.Contains(body, `"`+field+`"`) {
			t.Errorf("expected field %q in record, got: %s", field, body)
		}
	}
}

// ============================================================================
// Seed Tests
// ============================================================================

func TestSeedActivities_FixedRoster(t *testing.T) {
	t.Parallel()

	seed := SeedActivities()

	if len(seed) != 2 {
		t.Fatalf("expected 2 seed activities, got %d", len(seed))
	}

	byName := make(map[string]*Activity, len(seed))
	for _, a := range seed {
		byName[a.Name] = a
	}

	basketball, ok := byName["Basketball"]
	if !ok {
		t.Fatal("expected Basketball in seed")
	}
	if basketball.MaxParticipants != 15 {
		t.Errorf("expected Basketball max_participants 15, got %d", basketball.MaxParticipants)
	}
	if len(basketball.Participants) != 1 || basketball.Participants[0] != "alex@mergington.edu" {
		t.Errorf("unexpected Basketball participants: %v", basketball.Participants)
	}

	soccer, ok := byName["Soccer"]
	if !ok {
		t.Fatal("expected Soccer in seed")
	}
	if soccer.MaxParticipants != 22 {
		t.Errorf("expected Soccer max_participants 22, got %d", soccer.MaxParticipants)
	}
	if len(soccer.Participants) != 1 || soccer.Participants[0] != "jordan@mergington.edu" {
		t.Errorf("unexpected Soccer participants: %v", soccer.Participants)
	}
}

func TestSeedActivities_FreshCopyEachCall(t *testing.T) {
	t.Parallel()

	first := SeedActivities()
	first[0].Participants = append(first[0].Participants, "extra@mergington.edu")

	second := SeedActivities()
	for _, a := range second {
		if a.HasParticipant("extra@mergington.edu") {
			t.Error("mutating one seed slice leaked into a later call")
		}
	}
}
