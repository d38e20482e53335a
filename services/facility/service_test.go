package facility

import (
	"context"
	"testing"
	"time"

	facilityRepo "campusbook/database/repository/facility"
	"campusbook/models"
	"campusbook/utils"

	"go.uber.org/zap"
)

var (
	admin = models.Actor{ID: "admin-1", Role: models.RoleAdmin}
	user  = models.Actor{ID: "user-1", Role: models.RoleUser}
)

func newTestService() *DefaultFacilityService {
	return &DefaultFacilityService{
		Repo:   facilityRepo.NewMemoryFacilityRepo(),
		Clock:  utils.FixedClock{T: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		Logger: zap.NewNop(),
	}
}

func validInput() models.FacilityInput {
	return models.FacilityInput{
		Name:     "Physics Lab",
		Location: "Science Block, Floor 2",
		Capacity: 24,
		Category: models.CategoryLab,
	}
}

func TestCreateIsAdminOnly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, validInput(), user); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("user create: got %v, want authorization", err)
	}

	f, err := svc.Create(ctx, validInput(), admin)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if f.ID == "" {
		t.Error("created facility has no id")
	}
	if !f.Active {
		t.Error("new facility must start active")
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.FacilityInput)
	}{
		{"empty name", func(in *models.FacilityInput) { in.Name = "  " }},
		{"empty location", func(in *models.FacilityInput) { in.Location = "" }},
		{"zero capacity", func(in *models.FacilityInput) { in.Capacity = 0 }},
		{"negative capacity", func(in *models.FacilityInput) { in.Capacity = -3 }},
		{"unknown category", func(in *models.FacilityInput) { in.Category = "garage" }},
	}
	for _, tt := range cases {
		in := validInput()
		tt.mutate(&in)
		if _, err := svc.Create(ctx, in, admin); !utils.IsKind(err, utils.KindValidation) {
			t.Errorf("%s: got %v, want validation", tt.name, err)
		}
	}
}

func TestUpdate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, validInput(), admin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := validInput()
	in.Capacity = 30
	in.RequiresApproval = true

	if _, err := svc.Update(ctx, f.ID, in, user); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("user update: got %v, want authorization", err)
	}

	updated, err := svc.Update(ctx, f.ID, in, admin)
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Capacity != 30 || !updated.RequiresApproval {
		t.Errorf("updated=%+v", updated)
	}

	if _, err := svc.Update(ctx, "missing", in, admin); !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("missing update: got %v, want not_found", err)
	}
}

func TestDeactivateKeepsRecord(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	f, err := svc.Create(ctx, validInput(), admin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Deactivate(ctx, f.ID, user); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("user deactivate: got %v, want authorization", err)
	}
	if err := svc.Deactivate(ctx, f.ID, admin); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	// Soft delete: the record stays readable but no longer counts as active.
	got, err := svc.Get(ctx, f.ID)
	if err != nil {
		t.Fatalf("Get after deactivate: %v", err)
	}
	if got.Active {
		t.Error("facility still active after deactivation")
	}
	if _, err := svc.Repo.GetActiveByID(ctx, f.ID); !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("GetActiveByID: got %v, want not_found", err)
	}
}

func TestListFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	lab := validInput()
	court := models.FacilityInput{
		Name: "Basketball Court", Location: "Sports Centre",
		Capacity: 20, Category: models.CategorySports,
	}
	created, err := svc.Create(ctx, lab, admin)
	if err != nil {
		t.Fatalf("create lab: %v", err)
	}
	if _, err := svc.Create(ctx, court, admin); err != nil {
		t.Fatalf("create court: %v", err)
	}
	if err := svc.Deactivate(ctx, created.ID, admin); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	all, err := svc.List(ctx, facilityRepo.ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered list=%d, want 2", len(all))
	}

	active, err := svc.List(ctx, facilityRepo.ListFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if len(active) != 1 || active[0].Category != models.CategorySports {
		t.Errorf("active list=%+v", active)
	}

	labs, err := svc.List(ctx, facilityRepo.ListFilter{Category: models.CategoryLab})
	if err != nil {
		t.Fatalf("List labs: %v", err)
	}
	if len(labs) != 1 || labs[0].ID != created.ID {
		t.Errorf("lab list=%+v", labs)
	}
}
