package httpapi

import "github.com/platefeed/server/internal/model"

// Wire DTOs. Field names follow the contract consumed by the web client;
// identifiers travel as "_id".

type signUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type identityDTO struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type signUpResponse struct {
	Message string      `json:"message"`
	User    identityDTO `json:"user"`
}

type foodDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Video       string `json:"video"`
	FoodPartner string `json:"foodpartner"`
}

type createFoodResponse struct {
	Message string  `json:"message"`
	Food    foodDTO `json:"food"`
}

type listFoodResponse struct {
	Message   string    `json:"message"`
	FoodItems []foodDTO `json:"foodItems"`
}

func toIdentityDTO(id *model.Identity) identityDTO {
	return identityDTO{ID: id.ID.String(), Email: id.Email, Name: id.FullName}
}

func toFoodDTO(it *model.FoodItem) foodDTO {
	return foodDTO{
		ID:          it.ID.String(),
		Name:        it.Name,
		Description: it.Description,
		Video:       it.VideoURL,
		FoodPartner: it.PartnerID.String(),
	}
}
