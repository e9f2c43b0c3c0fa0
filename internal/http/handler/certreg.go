package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"certreg/internal/certificate"
	"certreg/internal/core"
	"certreg/internal/http/handler/middleware"
	"certreg/internal/http/payload"
	"certreg/internal/registry"
	tokenIssuer "certreg/pkg/jwt"
)

var (
	Authenticate      = "POST /certreg/authenticate"
	IssueCertificate  = "POST /certreg/certificates"
	VerifyCertificate = "GET /certreg/certificates/{hash}"
	CertificateProof  = "GET /certreg/certificates/{hash}/proof"
	GetStats          = "GET /certreg/stats"
	GetIssuances      = "GET /certreg/issuances"
)

type CertHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	certifier        CertificateService
}

func NewCertHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, certificateService CertificateService) *CertHandler {
	return &CertHandler{
		logs:             logger,
		requestValidator: requestValidator,
		certifier:        certificateService,
	}
}

func (h *CertHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authReq payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.certifier.Authenticate(r.Context(), authReq.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CertHandler) HandleIssueCertificate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", IssueCertificate, "request_id", requestId)
		return
	}

	var issueReq payload.IssueCertificateRequest
	err := h.requestValidator.DecodeJSONPayload(r, &issueReq)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not issue certificate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", IssueCertificate,
			"request_id", requestId)
		return
	}

	h.logs.Infow("issuance request received",
		"certificate_id", issueReq.CertificateID,
		"handler", IssueCertificate,
		"request_id", requestId)

	issued, err := h.certifier.IssueCertificate(r.Context(), authToken, issueReq.ToRequest())
	if err != nil {
		h.respondError(w, "Could not issue certificate", err, requestId, IssueCertificate)
		return
	}

	h.logs.Infow("certificate issued",
		"certificate_hash", issued.CertificateHash,
		"tx_hash", issued.TransactionHash,
		"handler", IssueCertificate,
		"request_id", requestId)

	resp := map[string]core.IssuedCertificate{
		"certificate": issued,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *CertHandler) HandleVerifyCertificate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	hashParam := payload.HashParam{Hash: r.PathValue("hash")}
	if err := hashParam.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not verify certificate",
			Error:   fmt.Errorf("validate hash parameter: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate hash parameter",
			"error", err,
			"handler", VerifyCertificate,
			"request_id", requestId)
		return
	}

	verification, err := h.certifier.VerifyCertificate(r.Context(), hashParam.Hash)
	if err != nil {
		h.respondError(w, "Could not verify certificate", err, requestId, VerifyCertificate)
		return
	}

	resp := map[string]core.Verification{
		"verification": verification,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CertHandler) HandleCertificateProof(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	hashParam := payload.HashParam{Hash: r.PathValue("hash")}
	if err := hashParam.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not build proof",
			Error:   fmt.Errorf("validate hash parameter: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate hash parameter",
			"error", err,
			"handler", CertificateProof,
			"request_id", requestId)
		return
	}

	portable, err := h.certifier.CertificateProof(r.Context(), hashParam.Hash)
	if err != nil {
		h.respondError(w, "Could not build proof", err, requestId, CertificateProof)
		return
	}

	resp := map[string]any{
		"proof": portable,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CertHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stats, err := h.certifier.Stats(r.Context())
	if err != nil {
		h.respondError(w, "Could not retrieve registry stats", err, requestId, GetStats)
		return
	}

	resp := map[string]core.Stats{
		"stats": stats,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CertHandler) HandleGetIssuances(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetIssuances, "request_id", requestId)
		return
	}

	issuances, err := h.certifier.IssuanceHistory(r.Context(), authToken)
	if err != nil {
		h.respondError(w, "Could not retrieve issuances", err, requestId, GetIssuances)
		return
	}

	resp := map[string][]core.IssuanceEntry{
		"issuances": issuances,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// respondError maps workflow errors onto distinct HTTP statuses so every
// failure stays distinguishable for the caller.
func (h *CertHandler) respondError(w http.ResponseWriter, message string, err error, requestId, handlerName string) {
	httpCode := http.StatusInternalServerError
	detail := "unexpected error occurred"

	switch {
	case errors.Is(err, certificate.ErrValidation) || errors.Is(err, core.ErrInvalidHash):
		httpCode = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, tokenIssuer.ErrTokenNotValid) || errors.Is(err, tokenIssuer.ErrTokenExpired):
		httpCode = http.StatusUnauthorized
		detail = err.Error()
	case errors.Is(err, registry.ErrUnauthorized):
		httpCode = http.StatusForbidden
		detail = err.Error()
	case errors.Is(err, core.ErrCertificateNotFound):
		httpCode = http.StatusNotFound
		detail = err.Error()
	case errors.Is(err, registry.ErrNotConnected):
		httpCode = http.StatusServiceUnavailable
		detail = err.Error()
	}

	h.respond(w, Response{
		Message: message,
		Error:   detail,
	}, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *CertHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
