package memory

import (
	"context"
	"testing"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/repository"
)

func TestUserRepositoryInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	names := []string{"jperez", "mgonzalez", "arodas"}
	for _, n := range names {
		u := domain.NewUserAccount("x", "y", "1710034065", n+"@empresa.com", n, domain.RoleWarehouseKeeper, "2024-01-15")
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create(%s): %v", n, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != len(names) {
		t.Fatalf("expected %d users, got %d", len(names), len(users))
	}
	for i, n := range names {
		if users[i].LoginName != n {
			t.Errorf("position %d: expected %s, got %s", i, n, users[i].LoginName)
		}
	}
}

func TestUserRepositorySnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u := domain.NewUserAccount("Juan", "Pérez", "1710034065", "juan@empresa.com", "jperez", domain.RolePurchasingLead, "2024-01-15")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutating the original or a returned copy must not affect stored state.
	u.LoginName = "mutated"
	got, err := repo.GetByLoginName(ctx, "jperez")
	if err != nil {
		t.Fatalf("GetByLoginName: %v", err)
	}
	got.Email = "mutated@empresa.com"

	again, err := repo.GetByLoginName(ctx, "jperez")
	if err != nil {
		t.Fatalf("GetByLoginName: %v", err)
	}
	if again.Email != "juan@empresa.com" {
		t.Errorf("stored state mutated through a returned copy: %s", again.Email)
	}
}

func TestUserRepositoryDeletePreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	var ids []string
	for _, n := range []string{"a_one", "b_two", "c_three"} {
		u := domain.NewUserAccount("x", "y", "1710034065", n+"@empresa.com", n, domain.RoleWarehouseKeeper, "2024-01-15")
		ids = append(ids, u.ID)
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	if err := repo.Delete(ctx, ids[1]); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	users, _ := repo.List(ctx)
	if len(users) != 2 || users[0].LoginName != "a_one" || users[1].LoginName != "c_three" {
		t.Errorf("unexpected order after delete: %+v", users)
	}

	if err := repo.Delete(ctx, ids[1]); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUserRepositoryExists(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u := domain.NewUserAccount("Juan", "Pérez", "1710034065", "juan@empresa.com", "jperez", domain.RolePurchasingLead, "2024-01-15")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	checks := []struct {
		name string
		fn   func() (bool, error)
		want bool
	}{
		{"login name present", func() (bool, error) { return repo.ExistsByLoginName(ctx, "jperez") }, true},
		{"login name absent", func() (bool, error) { return repo.ExistsByLoginName(ctx, "nobody") }, false},
		{"cedula present", func() (bool, error) { return repo.ExistsByCedula(ctx, "1710034065") }, true},
		{"email present", func() (bool, error) { return repo.ExistsByEmail(ctx, "juan@empresa.com") }, true},
		{"email absent", func() (bool, error) { return repo.ExistsByEmail(ctx, "other@empresa.com") }, false},
	}

	for _, c := range checks {
		got, err := c.fn()
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestEquipmentRepositoryCodeMatchIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewEquipmentRepository()

	eq := domain.NewEquipment("EXC-001", "2024-01-10")
	eq.Name = "Excavadora Principal"
	if err := repo.Create(ctx, eq); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err := repo.ExistsByCode(ctx, "EXC-001")
	if err != nil || !exists {
		t.Errorf("ExistsByCode(EXC-001) = %v, %v", exists, err)
	}
	exists, err = repo.ExistsByCode(ctx, "exc-001")
	if err != nil || exists {
		t.Errorf("code match should be case-sensitive, got exists=%v", exists)
	}
}

func TestMovementRepositoryExistsByActor(t *testing.T) {
	ctx := context.Background()
	repo := NewMovementRepository()

	mv := domain.NewMovementRecord("eq-1", "Excavadora Principal", domain.MovementExit, "Proyecto Norte", "2024-07-20", "jperez", "")
	if err := repo.Create(ctx, mv); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err := repo.ExistsByActor(ctx, "jperez")
	if err != nil || !exists {
		t.Errorf("ExistsByActor(jperez) = %v, %v", exists, err)
	}
	exists, err = repo.ExistsByActor(ctx, "mgonzalez")
	if err != nil || exists {
		t.Errorf("ExistsByActor(mgonzalez) = %v, %v", exists, err)
	}
}
