package geo

import "github.com/marketlens/marketlens/internal/models"

// cityCentroids backs the last-resort fallback when an area name matches
// nothing in the reference table.
var cityCentroids = map[string]models.Location{
	"dubai":     {Lat: 25.2048, Lng: 55.2708},
	"abu dhabi": {Lat: 24.4539, Lng: 54.3773},
	"sharjah":   {Lat: 25.3463, Lng: 55.4209},
	"ajman":     {Lat: 25.4052, Lng: 55.5136},
	"al ain":    {Lat: 24.2075, Lng: 55.7447},
}

const defaultCity = "dubai"
