package dto

type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationResponse struct {
	Location CoordinateResponse `json:"location"`
}

type RoundResponse struct {
	Location   CoordinateResponse `json:"location"`
	HeadingDeg float64            `json:"heading_deg"`
	PitchDeg   float64            `json:"pitch_deg"`
	PanoID     string             `json:"pano_id"`
}

type ScoreRequest struct {
	Target CoordinateResponse `json:"target"`
	Guess  CoordinateResponse `json:"guess"`
}

type ScoreResponse struct {
	Score      int     `json:"score"`
	DistanceKm float64 `json:"distance_km"`
}
