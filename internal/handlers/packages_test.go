package handlers

import (
	"testing"

	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/google/uuid"
)

func TestPackageCRUD(t *testing.T) {
	db := setupDB(t)
	handler := NewPackageHandler(db)
	adminCtx := ctxWithRole(uuid.New(), models.RoleAdmin)
	publicCtx := ctxWithRole(uuid.Nil, "")

	create := &PackageInput{}
	create.Body.Name = "Cultural Triangle"
	create.Body.Theme = "Heritage"
	create.Body.StartingPrice = "1200 USD"
	create.Body.IdealFor = []string{"Family", "Honeymoon"}
	create.Body.DailyPlans = []models.DailyPlan{
		{Day: 1, Title: "Arrival", Activities: []string{"Airport pickup"}, Locations: []string{"Colombo"}},
		{Day: 2, Title: "Sigiriya", Activities: []string{"Rock fortress climb"}},
	}
	create.Body.IncludedItems = []string{"Accommodation", "Transport"}
	create.Body.NotIncludedItems = []string{"Flights"}

	resp, err := handler.HandleCreate(adminCtx, create)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	pkg := resp.Body.Package

	t.Run("PubliclyVisibleImmediately", func(t *testing.T) {
		list, err := handler.HandleList(publicCtx, &struct{}{})
		if err != nil {
			t.Fatalf("HandleList returned error: %v", err)
		}
		if len(list.Body) != 1 {
			t.Fatalf("expected 1 package, got %d", len(list.Body))
		}
	})

	t.Run("Get", func(t *testing.T) {
		get := &GetPackageInput{ID: pkg.ID.String()}
		resp, err := handler.HandleGet(publicCtx, get)
		if err != nil {
			t.Fatalf("HandleGet returned error: %v", err)
		}
		if len(resp.Body.DailyPlans) != 2 || resp.Body.DailyPlans[0].Title != "Arrival" {
			t.Errorf("daily plans not round-tripped: %+v", resp.Body.DailyPlans)
		}
	})

	t.Run("Update", func(t *testing.T) {
		update := &UpdatePackageInput{ID: pkg.ID.String()}
		update.Body = create.Body
		update.Body.StartingPrice = "1350 USD"
		resp, err := handler.HandleUpdate(adminCtx, update)
		if err != nil {
			t.Fatalf("HandleUpdate returned error: %v", err)
		}
		if resp.Body.Package.StartingPrice != "1350 USD" {
			t.Errorf("expected updated price, got %s", resp.Body.Package.StartingPrice)
		}
	})

	t.Run("UpdateUnknown", func(t *testing.T) {
		update := &UpdatePackageInput{ID: uuid.New().String()}
		update.Body = create.Body
		if _, err := handler.HandleUpdate(adminCtx, update); err == nil {
			t.Fatal("expected not found, got nil")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		del := &DeletePackageInput{ID: pkg.ID.String()}
		if _, err := handler.HandleDelete(adminCtx, del); err != nil {
			t.Fatalf("HandleDelete returned error: %v", err)
		}
		if _, err := handler.HandleDelete(adminCtx, del); err == nil {
			t.Fatal("expected not found on second delete, got nil")
		}

		list, _ := handler.HandleList(publicCtx, &struct{}{})
		if len(list.Body) != 0 {
			t.Errorf("expected empty list after delete, got %d", len(list.Body))
		}
	})
}
