package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"contractease/internal/contract/service/mocks"
)

type ServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockStore   *mocks.MockContractStore
	mockUsers   *mocks.MockUserDirectory
	mockClients *mocks.MockClientDirectory
	service     *ContractService
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockContractStore(s.ctrl)
	s.mockUsers = mocks.NewMockUserDirectory(s.ctrl)
	s.mockClients = mocks.NewMockClientDirectory(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.mockStore, s.mockUsers, s.mockClients, WithLogger(logger))
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
