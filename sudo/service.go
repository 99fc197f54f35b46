package sudo

import (
	"fmt"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/plumbing"
)

// Service provides a lazily initialized runner that executes commands with
// elevated privileges.
type Service struct {
	lazy *plumbing.LazyService[exec.Runner, exec.Runner]
}

// NewService creates a new instance of Service with the provided provider and
// runner.
func NewService(provider *Provider, runner exec.Runner) *Service {
	return &Service{plumbing.NewLazyService[exec.Runner, exec.Runner](provider, runner)}
}

// GetRunner returns a runner with an escalation decorator or an error if no
// escalation method could be initialized.
func (s *Service) GetRunner() (exec.Runner, error) {
	runner, err := s.lazy.Get()
	if err != nil {
		return nil, fmt.Errorf("get sudo runner: %w", err)
	}
	return runner, nil
}

// Runner returns a runner with an escalation decorator. If the initialization
// failed, an error runner is returned which will return the initialization
// error on every operation attempted on it.
func (s *Service) Runner() exec.Runner {
	runner, err := s.lazy.Get()
	if err != nil {
		return exec.NewErrorExecutor(err)
	}
	return runner
}
