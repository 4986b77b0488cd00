package dto

import (
	"github.com/google/uuid"

	"gameku_backend/internals/features/games/tables/model"
)

type CreateTableRequest struct {
	TableGameID     uuid.UUID `json:"table_game_id" validate:"required"`
	TableCoordinate int       `json:"table_coordinate" validate:"gte=0"`
	TableX          int       `json:"table_x" validate:"gte=0"`
	TableY          int       `json:"table_y" validate:"gte=0"`
}

type UpdateTableRequest struct {
	TableCoordinate int `json:"table_coordinate" validate:"gte=0"`
	TableX          int `json:"table_x" validate:"gte=0"`
	TableY          int `json:"table_y" validate:"gte=0"`
}

func (r *CreateTableRequest) ToModel(addedBy uuid.UUID) *model.TableModel {
	return &model.TableModel{
		TableGameID:     r.TableGameID,
		TableCoordinate: r.TableCoordinate,
		TableX:          r.TableX,
		TableY:          r.TableY,
		TableIsActive:   true,
		TableAddedBy:    addedBy,
		TableUpdatedBy:  addedBy,
	}
}

func (r *UpdateTableRequest) ToUpdates(updatedBy uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"table_coordinate": r.TableCoordinate,
		"table_x":          r.TableX,
		"table_y":          r.TableY,
		"table_updated_by": updatedBy,
	}
}

var (
	TableFilterColumns = map[string]string{
		"table_id":         "table_id",
		"table_game_id":    "table_game_id",
		"table_coordinate": "table_coordinate",
		"table_x":          "table_x",
		"table_y":          "table_y",
		"table_is_active":  "table_is_active",
		"table_is_deleted": "table_is_deleted",
	}
	TableSortColumns = map[string]string{
		"table_coordinate": "table_coordinate",
		"table_created_at": "table_created_at",
	}
)
