package types

import (
	ierr "github.com/cartology/tripquote/internal/errors"
	"github.com/samber/lo"
)

// ServiceCategory classifies a travel service line item. Categories only
// drive display iconography and have no effect on pricing.
type ServiceCategory string

const (
	CategoryHotel     ServiceCategory = "Hotel"
	CategoryAir       ServiceCategory = "Air"
	CategoryCruise    ServiceCategory = "Cruise"
	CategoryDMC       ServiceCategory = "DMC"
	CategoryTourOp    ServiceCategory = "Tour Op/Wholesaler"
	CategoryActivity  ServiceCategory = "Activity provider"
	CategoryTransport ServiceCategory = "Transport"
	CategoryInsurance ServiceCategory = "Insurance"
	CategoryHomes     ServiceCategory = "Homes & Villas"
)

// ServiceCategories lists all categories in display order.
var ServiceCategories = []ServiceCategory{
	CategoryHotel,
	CategoryAir,
	CategoryCruise,
	CategoryDMC,
	CategoryTourOp,
	CategoryActivity,
	CategoryTransport,
	CategoryInsurance,
	CategoryHomes,
}

// categoryIconRefs maps categories to their icon asset references. Injected
// as static catalog data so the calculation core stays free of asset URLs.
var categoryIconRefs = map[ServiceCategory]string{
	CategoryHotel:     "https://cdn.cartologytravel.com/icons/hotel.png",
	CategoryAir:       "https://cdn.cartologytravel.com/icons/air.png",
	CategoryCruise:    "https://cdn.cartologytravel.com/icons/cruise.png",
	CategoryDMC:       "https://cdn.cartologytravel.com/icons/dmc.png",
	CategoryTourOp:    "https://cdn.cartologytravel.com/icons/tour-op.png",
	CategoryActivity:  "https://cdn.cartologytravel.com/icons/activity.png",
	CategoryTransport: "https://cdn.cartologytravel.com/icons/transport.png",
	CategoryInsurance: "https://cdn.cartologytravel.com/icons/insurance.png",
	CategoryHomes:     "https://cdn.cartologytravel.com/icons/homes-villas.png",
}

func (c ServiceCategory) String() string {
	return string(c)
}

// IconRef returns the icon asset reference for the category. Unknown
// categories yield an empty ref, never an error.
func (c ServiceCategory) IconRef() string {
	return categoryIconRefs[c]
}

func (c ServiceCategory) Validate() error {
	if !lo.Contains(ServiceCategories, c) {
		return ierr.NewError("invalid service category").
			WithHint("Please provide a valid service category").
			WithReportableDetails(map[string]any{
				"allowed": ServiceCategories,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
