package service

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"employee-manager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedRecords() []domain.Record {
	return []domain.Record{
		domain.NewManager("E1", "Carol", "Sales", 50000, 5000).ToRecord(),
		domain.NewPartTimeEmployee("E2", "Bob", "Support", 200, 160).ToRecord(),
		domain.NewFullTimeEmployee("E3", "Alice", "Engineering", 45000).ToRecord(),
	}
}

func TestNewEmployeeServiceLoadsRecords(t *testing.T) {
	repo := &fakeRecordRepo{records: seedRecords()}
	s := NewEmployeeService(repo, zap.NewNop())

	assert.Equal(t, 3, s.Len())
	e, ok := s.FindByID("E1")
	require.True(t, ok)
	assert.Equal(t, 55000.0, e.CalculateSalary())
}

func TestNewEmployeeServiceMissingData(t *testing.T) {
	repo := &fakeRecordRepo{loadErr: fmt.Errorf("open employees.json: %w", os.ErrNotExist)}
	s := NewEmployeeService(repo, zap.NewNop())
	assert.Equal(t, 0, s.Len())
}

func TestNewEmployeeServiceMalformedData(t *testing.T) {
	repo := &fakeRecordRepo{loadErr: errors.New("invalid character 'n' looking for beginning of value")}
	s := NewEmployeeService(repo, zap.NewNop())
	assert.Equal(t, 0, s.Len())
}

func TestLoadSkipsUnknownTypes(t *testing.T) {
	records := append(seedRecords(), domain.Record{EmployeeID: "E4", Name: "Dan", Type: "contractor"})
	repo := &fakeRecordRepo{records: records}
	s := NewEmployeeService(repo, zap.NewNop())

	assert.Equal(t, 3, s.Len())
	_, ok := s.FindByID("E4")
	assert.False(t, ok)
}

func TestAdd(t *testing.T) {
	repo := &fakeRecordRepo{}
	s := NewEmployeeService(repo, zap.NewNop())

	ok := s.Add(domain.NewFullTimeEmployee("E1", "Alice", "Engineering", 45000))
	require.True(t, ok)
	assert.Equal(t, 1, repo.saves)

	e, found := s.FindByID("E1")
	require.True(t, found)
	assert.Equal(t, "Alice", e.Name())

	t.Run("duplicate id leaves store unchanged", func(t *testing.T) {
		ok := s.Add(domain.NewManager("E1", "Impostor", "Sales", 1, 1))
		assert.False(t, ok)
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 1, repo.saves)

		e, _ := s.FindByID("E1")
		assert.Equal(t, "Alice", e.Name())
	})
}

func TestAddKeepsEmployeeWhenSaveFails(t *testing.T) {
	repo := &fakeRecordRepo{saveErr: errors.New("disk full")}
	s := NewEmployeeService(repo, zap.NewNop())

	ok := s.Add(domain.NewFullTimeEmployee("E1", "Alice", "Engineering", 45000))
	assert.True(t, ok)
	_, found := s.FindByID("E1")
	assert.True(t, found)
}

func TestRemove(t *testing.T) {
	repo := &fakeRecordRepo{records: seedRecords()}
	s := NewEmployeeService(repo, zap.NewNop())

	assert.False(t, s.Remove("E9"))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, repo.saves)

	assert.True(t, s.Remove("E2"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, repo.saves)
	_, found := s.FindByID("E2")
	assert.False(t, found)
}

func TestSearchByName(t *testing.T) {
	s := NewEmployeeService(&fakeRecordRepo{records: seedRecords()}, zap.NewNop())

	t.Run("case-insensitive substring", func(t *testing.T) {
		found := s.SearchByName("aROL")
		require.Len(t, found, 1)
		assert.Equal(t, "E1", found[0].ID())
	})

	t.Run("multiple hits in store order", func(t *testing.T) {
		found := s.SearchByName("o")
		require.Len(t, found, 2)
		assert.Equal(t, "E1", found[0].ID())
		assert.Equal(t, "E2", found[1].ID())
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, s.SearchByName("zzz"))
	})
}

func TestTotalPayroll(t *testing.T) {
	s := NewEmployeeService(&fakeRecordRepo{}, zap.NewNop())
	s.Add(domain.NewManager("E1", "Carol", "Sales", 50000, 5000))
	s.Add(domain.NewPartTimeEmployee("E2", "Bob", "Support", 200, 160))

	assert.Equal(t, 87000.0, s.TotalPayroll())
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s := NewEmployeeService(&fakeRecordRepo{}, zap.NewNop())
	s.Add(domain.NewFullTimeEmployee("E3", "Alice", "Engineering", 45000))
	s.Add(domain.NewFullTimeEmployee("E1", "Carol", "Sales", 50000))
	s.Add(domain.NewFullTimeEmployee("E2", "Bob", "Support", 30000))

	var ids []string
	for _, e := range s.All() {
		ids = append(ids, e.ID())
	}
	assert.Equal(t, []string{"E3", "E1", "E2"}, ids)
}

func TestPersistWritesStoreOrder(t *testing.T) {
	repo := &fakeRecordRepo{}
	s := NewEmployeeService(repo, zap.NewNop())
	s.Add(domain.NewFullTimeEmployee("E2", "Bob", "Support", 30000))
	s.Add(domain.NewFullTimeEmployee("E1", "Alice", "Engineering", 45000))

	require.Len(t, repo.records, 2)
	assert.Equal(t, "E2", repo.records[0].EmployeeID)
	assert.Equal(t, "E1", repo.records[1].EmployeeID)
}

func TestPersistAfterSetterMutation(t *testing.T) {
	repo := &fakeRecordRepo{}
	s := NewEmployeeService(repo, zap.NewNop())
	s.Add(domain.NewManager("E1", "Carol", "Sales", 50000, 5000))

	e, _ := s.FindByID("E1")
	m := e.(*domain.Manager)
	require.NoError(t, m.SetBonus(7500))
	s.Persist()

	require.Len(t, repo.records, 1)
	require.NotNil(t, repo.records[0].Bonus)
	assert.Equal(t, 7500.0, *repo.records[0].Bonus)
}
