package scheduler

import (
	"errors"
	"testing"

	service_mocks "github.com/KoshakFSB/WCWD/internal/mocks/service_mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_StartRunsRecoveryScans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := service_mocks.NewMockAccountService(ctrl)
	payouts := service_mocks.NewMockPayoutService(ctrl)

	// the first pass fires synchronously so due work is recovered on boot
	accounts.EXPECT().CompleteDueHolds(gomock.Any()).Return(2, nil)
	payouts.EXPECT().ConfirmDue(gomock.Any()).Return(1, nil)

	s := New(accounts, payouts)
	assert.NoError(t, s.Start())
	s.Stop()
}

func TestScheduler_ScanErrorsDoNotStopStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := service_mocks.NewMockAccountService(ctrl)
	payouts := service_mocks.NewMockPayoutService(ctrl)

	accounts.EXPECT().CompleteDueHolds(gomock.Any()).Return(0, errors.New("db down"))
	payouts.EXPECT().ConfirmDue(gomock.Any()).Return(0, errors.New("db down"))

	s := New(accounts, payouts)
	assert.NoError(t, s.Start())
	s.Stop()
}
