package usecase

import (
	"context"
	"time"

	"github.com/codescan-io/sonarqube-sub000/internal/repository"
	"github.com/codescan-io/sonarqube-sub000/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	IssueUsecaseInterface
	RuleUsecaseInterface
	UserUsecaseInterface
	QualityGateUsecaseInterface
	HotspotUsecaseInterface
	AdminUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
