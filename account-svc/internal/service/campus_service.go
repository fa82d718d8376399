package service

import (
	"math"
	"regexp"

	"github.com/Second-Serve/backend/account-svc/internal/domain"
)

// A campus card barcode is a 9, nine digits, then a 0.
var barcodePattern = regexp.MustCompile(`^9[0-9]{9}0$`)

var MadisonCampus = domain.Bounds{
	Lat1: 43.07860429818014, Lng1: -89.37878605972091,
	Lat2: 43.06287379628286, Lng2: -89.44083184696541,
}

type CampusService struct {
	bounds domain.Bounds
}

func NewCampusService(bounds domain.Bounds) *CampusService {
	return &CampusService{bounds: bounds}
}

func (s *CampusService) VerifyCampusID(barcode string) bool {
	return barcodePattern.MatchString(barcode)
}

func (s *CampusService) CheckLocation(loc domain.Location) domain.LocationResult {
	if math.IsNaN(loc.Latitude) || math.IsNaN(loc.Longitude) {
		return domain.LocationResult{Reason: "Location is missing or invalid."}
	}
	if !s.contains(loc) {
		return domain.LocationResult{Reason: "Address is not within the UW-Madison campus."}
	}
	return domain.LocationResult{IsValid: true}
}

func (s *CampusService) contains(loc domain.Location) bool {
	minLat, maxLat := math.Min(s.bounds.Lat1, s.bounds.Lat2), math.Max(s.bounds.Lat1, s.bounds.Lat2)
	minLng, maxLng := math.Min(s.bounds.Lng1, s.bounds.Lng2), math.Max(s.bounds.Lng1, s.bounds.Lng2)
	return loc.Latitude >= minLat && loc.Latitude <= maxLat &&
		loc.Longitude >= minLng && loc.Longitude <= maxLng
}
