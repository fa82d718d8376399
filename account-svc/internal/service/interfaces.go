package service

import "github.com/Second-Serve/backend/account-svc/internal/domain"

type CampusServiceInterface interface {
	VerifyCampusID(barcode string) bool
	CheckLocation(loc domain.Location) domain.LocationResult
}

var _ CampusServiceInterface = (*CampusService)(nil)
