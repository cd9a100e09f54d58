package errors

import "net/http"

var (
	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"역을 찾을 수 없습니다",
		http.StatusNotFound,
	)

	ErrTransferRequired = New(
		"TRANSFER_REQUIRED",
		"직통 경로가 없습니다 (환승 필요)",
		http.StatusNotFound,
	)

	ErrNoSuitableExit = New(
		"NO_SUITABLE_EXIT",
		"적합한 출입구를 찾을 수 없습니다",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"경로 정보를 찾을 수 없습니다. 경로 검색을 다시 해주세요.",
		http.StatusNotFound,
	)

	ErrCheckpointNotFound = New(
		"CHECKPOINT_NOT_FOUND",
		"체크포인트를 찾을 수 없습니다",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
