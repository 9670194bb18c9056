package service

import (
	"employee-manager/internal/domain"
)

// fakeRecordRepo records saves in memory so tests run without a real backend.
type fakeRecordRepo struct {
	records []domain.Record
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeRecordRepo) LoadAll() ([]domain.Record, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.records, nil
}

func (f *fakeRecordRepo) SaveAll(records []domain.Record) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records = records
	return nil
}
