package model

type CreateTodoDTO struct {
	Description string `json:"description"`
}
