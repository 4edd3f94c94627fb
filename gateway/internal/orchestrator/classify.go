package orchestrator

import (
	"errors"

	"github.com/geraldbane/e-commerce-microservices/gateway/internal/client"
)

func isNotFound(err error) bool {
	return errors.Is(err, client.ErrNotFound)
}

func isRejected(err error) bool {
	return errors.Is(err, client.ErrRejected)
}
