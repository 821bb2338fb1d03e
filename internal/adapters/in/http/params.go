package http

import (
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathID binds a UUID path parameter the way generated oapi-codegen servers do.
func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true},
	); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	kernelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernelID, nil
}

// bodyID parses an optional UUID from a request body. Blank yields the zero UUID.
func bodyID(name, raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// bindRequest decodes the JSON body into req and validates it.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
