package jsonfile

import (
	"encoding/json"
	"os"

	"employee-manager/internal/domain"
)

// JsonRecordRepo stores the record set as one indented JSON array,
// rewritten whole on every save.
type JsonRecordRepo struct {
	path string
}

func NewJsonRecordRepo(path string) *JsonRecordRepo {
	return &JsonRecordRepo{path: path}
}

func (r *JsonRecordRepo) LoadAll() ([]domain.Record, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *JsonRecordRepo) SaveAll(records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0644)
}
