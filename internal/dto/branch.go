package dto

import (
	"github.com/svitvalut/exchange_backend/internal/core/domain"
)

// BranchResponse defines the data returned for a branch. Coordinates are
// absent when the branch location is unknown.
type BranchResponse struct {
	ID      int64    `json:"id"`
	Number  int      `json:"number"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Hours   string   `json:"hours,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	IsOpen  bool     `json:"isOpen"`
}

// ToBranchResponse converts a domain.Branch to BranchResponse DTO
func ToBranchResponse(b domain.Branch) BranchResponse {
	resp := BranchResponse{
		ID:      b.ID,
		Number:  b.Number,
		Address: b.Address,
		Hours:   b.Hours,
		Phone:   b.Phone,
		IsOpen:  b.IsOpen,
	}
	if b.HasLocation() {
		resp.Lat = &b.Coordinates.Lat
		resp.Lng = &b.Coordinates.Lng
	}
	return resp
}

// ToListBranchResponse converts a slice of domain.Branch to response DTOs
func ToListBranchResponse(branches []domain.Branch) []BranchResponse {
	res := make([]BranchResponse, len(branches))
	for i, b := range branches {
		res[i] = ToBranchResponse(b)
	}
	return res
}

// BranchSelectionResponse reports the outcome of an auto-selection pass.
type BranchSelectionResponse struct {
	Branch *BranchResponse `json:"branch,omitempty"`
	Method string          `json:"method"`
}

// ToBranchSelectionResponse converts a domain.BranchChoice to its DTO
func ToBranchSelectionResponse(choice *domain.BranchChoice) BranchSelectionResponse {
	resp := BranchSelectionResponse{Method: string(choice.Method)}
	if choice.Branch != nil {
		b := ToBranchResponse(*choice.Branch)
		resp.Branch = &b
	}
	return resp
}
