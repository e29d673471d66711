package organization

type OrganizationResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	PerimeterRadius float64 `json:"perimeter_radius"`
}

type UpdateGeoFenceRequest struct {
	Latitude        *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	PerimeterRadius *float64 `json:"perimeter_radius" binding:"required,gt=0"`
}
