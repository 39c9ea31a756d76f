package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(c echo.Context) error {
	var req servers.CreateLoadJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	refs := []servers.Id{
		req.ShipmentId, req.CustomerProfileId, req.ShipperProfileId, req.ConsigneeProfileId,
		req.DispatcherProfileId, req.PickUpLocationId, req.DestinationId,
	}
	ids := make([]kernel.UUID, len(refs))
	for i, ref := range refs {
		id, err := fromID(ref)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	freight, err := freightOf(req)
	if err != nil {
		return err
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(commands.CreateLoadParams{
		LoadID:       loadID,
		ShipmentID:   ids[0],
		Actor:        appUser(c),
		Customer:     ids[1],
		Shipper:      ids[2],
		Consignee:    ids[3],
		Dispatcher:   ids[4],
		PickUp:       ids[5],
		Destination:  ids[6],
		PickUpDate:   req.PickUpDate,
		DeliveryDate: req.DeliveryDate,
		Freight:      freight,
		Draft:        valueOr(req.Draft, false),
	})
	if err != nil {
		return err
	}
	if err = s.h.CreateLoad.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, servers.Created{Id: loadID.Bytes()})
}

func freightOf(req servers.CreateLoadRequest) (load.Freight, error) {
	loadType, err := load.ParseType(string(req.LoadType))
	if err != nil {
		return load.Freight{}, err
	}
	length, lErr := optionalDecimal("length", req.Length)
	width, wErr := optionalDecimal("width", req.Width)
	height, hErr := optionalDecimal("height", req.Height)
	weight, gErr := optionalDecimal("weight", req.Weight)
	quantity, qErr := optionalDecimal("quantity", req.Quantity)
	if err = errors.Join(lErr, wErr, hErr, gErr, qErr); err != nil {
		return load.Freight{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return load.Freight{
		Length:        length,
		Width:         width,
		Height:        height,
		Weight:        weight,
		Quantity:      quantity,
		Commodity:     valueOr(req.Commodity, ""),
		EquipmentType: valueOr(req.EquipmentType, ""),
		Type:          loadType,
	}, nil
}

// GetLoad handles GET /api/v1/loads/{loadId}.
func (s *Server) GetLoad(c echo.Context, loadId servers.LoadId) error {
	id, err := fromID(loadId)
	if err != nil {
		return err
	}
	q, err := queries.NewGetLoadQuery(id, appUser(c))
	if err != nil {
		return err
	}
	view, err := s.h.GetLoad.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLoad(view))
}

// ListLoads handles GET /api/v1/loads?status=&limit=&offset=.
func (s *Server) ListLoads(c echo.Context, params servers.ListLoadsParams) error {
	var status *load.Status
	if params.Status != nil && *params.Status != "" {
		st, err := load.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = &st
	}

	q, err := queries.NewListLoadsQuery(appUser(c), status, valueOr(params.Limit, 0), valueOr(params.Offset, 0))
	if err != nil {
		return err
	}
	views, err := s.h.ListLoads.Handle(c.Request().Context(), q)
	if err != nil {
		return err
	}

	response := make([]servers.Load, len(views))
	for i, v := range views {
		response[i] = toLoad(v)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateLoadStatus handles PATCH /api/v1/loads/{loadId}/status.
func (s *Server) UpdateLoadStatus(c echo.Context, loadId servers.LoadId) error {
	id, err := fromID(loadId)
	if err != nil {
		return err
	}
	var req servers.UpdateLoadStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	target, err := load.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLoadStatusCommand(id, appUser(c), target)
	if err != nil {
		return err
	}
	if err = s.h.UpdateLoadStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// PublishLoad handles POST /api/v1/loads/{loadId}/publish.
func (s *Server) PublishLoad(c echo.Context, loadId servers.LoadId) error {
	return s.manageLoad(c, loadId, commands.NewPublishLoadCommand)
}

// DeleteLoad handles DELETE /api/v1/loads/{loadId} (soft deletion).
func (s *Server) DeleteLoad(c echo.Context, loadId servers.LoadId) error {
	return s.manageLoad(c, loadId, commands.NewSoftDeleteLoadCommand)
}

func (s *Server) manageLoad(
	c echo.Context,
	loadId servers.LoadId,
	newCommand func(loadID, actor kernel.UUID) (commands.ManageLoadCommand, error),
) error {
	id, err := fromID(loadId)
	if err != nil {
		return err
	}
	cmd, err := newCommand(id, appUser(c))
	if err != nil {
		return err
	}
	if err = s.h.ManageLoad.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
