package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"contractease/internal/signature/service/mocks"
)

type ServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockSignatures *mocks.MockSignatureStore
	mockContracts  *mocks.MockContractFinalizer
	service        *SignatureService
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSignatures = mocks.NewMockSignatureStore(s.ctrl)
	s.mockContracts = mocks.NewMockContractFinalizer(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = New(s.mockSignatures, s.mockContracts, WithLogger(logger))
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
