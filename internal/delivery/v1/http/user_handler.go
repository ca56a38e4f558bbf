package http

import (
	"net/http"

	"github.com/shopmate-vn/go-backend/internal/usecase"
	"github.com/shopmate-vn/go-backend/pkg/logger"
)

type UserHandler struct {
	userUsecase usecase.UserUC
	logger      logger.Logger
}

func NewUserHandler(userUsecase usecase.UserUC, logger logger.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger}
}

// register
//
//	@Summary		Register a user
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"Email and password"
//	@Success		201		{object}	userResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/auth/register [post]
func (h *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.userUsecase.Register(r.Context(), &usecase.RegisterReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toUserResponse(user))
}

// login
//
//	@Summary		Log a user in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		credentialsRequest	true	"Email and password"
//	@Success		200		{object}	loginResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/auth/login [post]
func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.userUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, loginResponse{UserID: res.UserID, Email: res.Email})
}
