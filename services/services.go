package services

import (
	"github.com/securefit/ecard/dispatch"
	"github.com/securefit/ecard/repositories"
)

// Services holds all service instances
type Services struct {
	FitTest FitTestService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, dispatcher dispatch.Dispatcher) *Services {
	return &Services{
		FitTest: NewFitTestService(repos.FitTest, dispatcher),
	}
}
