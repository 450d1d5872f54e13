package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/softwarewrighter/sw-checklist/internal/model"
)

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a mock and registers expectation checks on cleanup.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mockStore := &MockReportStore{}
	mockStore.Test(t)

	t.Cleanup(func() { mockStore.AssertExpectations(t) })

	return mockStore
}

// SaveReport provides a mock function.
func (_m *MockReportStore) SaveReport(path m.Path, report m.Report) error {
	ret := _m.Called(path, report)

	return ret.Error(0)
}

// LoadReport provides a mock function.
func (_m *MockReportStore) LoadReport(path m.Path) (m.Report, error) {
	ret := _m.Called(path)

	var report m.Report
	if r, ok := ret.Get(0).(m.Report); ok {
		report = r
	}

	return report, ret.Error(1)
}
