package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/ports"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOffer handles POST /api/v1/loads/{loadId}/offers.
func (s *Server) CreateOffer(c echo.Context, loadId servers.LoadId) error {
	loadID, err := fromID(loadId)
	if err != nil {
		return err
	}
	var req servers.CreateOfferJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	direction, err := offer.ParseDirection(string(req.Direction))
	if err != nil {
		return err
	}
	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return err
	}
	var carrier kernel.UUID
	if req.CarrierProfileId != nil {
		if carrier, err = fromID(*req.CarrierProfileId); err != nil {
			return err
		}
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOfferCommand(offerID, loadID, appUser(c), direction, carrier, amount)
	if err != nil {
		return err
	}
	if err = s.h.CreateOffer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, servers.Created{Id: offerID.Bytes()})
}

// ListOffers handles GET /api/v1/loads/{loadId}/offers.
func (s *Server) ListOffers(c echo.Context, loadId servers.LoadId) error {
	loadID, err := fromID(loadId)
	if err != nil {
		return err
	}
	q, err := queries.NewListOffersQuery(loadID, appUser(c))
	if err != nil {
		return err
	}
	views, err := s.h.ListOffers.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	response := make([]servers.Offer, len(views))
	for i, v := range views {
		response[i] = toOffer(v)
	}
	return c.JSON(http.StatusOK, response)
}

// CounterOffer handles POST /api/v1/offers/{offerId}/counter.
func (s *Server) CounterOffer(c echo.Context, offerId servers.OfferId) error {
	offerID, err := fromID(offerId)
	if err != nil {
		return err
	}
	var req servers.CounterOfferJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCounterOfferCommand(offerID, appUser(c), amount)
	if err != nil {
		return err
	}
	if err = s.h.CounterOffer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RespondOffer handles POST /api/v1/offers/{offerId}/respond.
func (s *Server) RespondOffer(c echo.Context, offerId servers.OfferId) error {
	offerID, err := fromID(offerId)
	if err != nil {
		return err
	}
	var req servers.RespondOfferJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	decision, err := offer.ParseDecision(string(req.Decision))
	if err != nil {
		return err
	}

	cmd, err := commands.NewRespondOfferCommand(offerID, appUser(c), decision)
	if err != nil {
		return err
	}
	if err = s.h.RespondOffer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAgreementStatus handles GET /api/v1/loads/{loadId}/agreement.
func (s *Server) GetAgreementStatus(c echo.Context, loadId servers.LoadId) error {
	loadID, err := fromID(loadId)
	if err != nil {
		return err
	}
	q, err := queries.NewAgreementStatusQuery(loadID, appUser(c))
	if err != nil {
		return err
	}
	status, err := s.h.AgreementStatus.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAgreementStatus(status))
}

// AgreeFinalAgreement handles POST /api/v1/loads/{loadId}/agreement.
func (s *Server) AgreeFinalAgreement(c echo.Context, loadId servers.LoadId) error {
	loadID, err := fromID(loadId)
	if err != nil {
		return err
	}
	var req servers.AgreeFinalAgreementJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAgreeFinalAgreementCommand(loadID, appUser(c), ports.AgreementParty(req.Party))
	if err != nil {
		return err
	}
	if err = s.h.AgreeFinalAgreement.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
