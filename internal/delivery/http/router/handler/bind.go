package handler

import (
	deliverycontext "wellness/internal/delivery/context"
	domainerrors "wellness/internal/domain/errors"
	"wellness/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return invalidBody()
	}

	return c.Validate(req)
}

// currentSession returns the session attached by the auth middleware.
func currentSession(c echo.Context) (*usecase.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrTokenRequired)
	}

	return session, nil
}

func invalidBody() error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("Corpo da requisição inválido"))
}

func invalidQuery(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) && len(bindErr.Field) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(bindErr.Field + " deve ser um número válido")
	}

	return domainerrors.ErrValidationFailed.WithDetails("Parâmetros de consulta inválidos")
}
