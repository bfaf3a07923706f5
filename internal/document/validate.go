package document

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	flexerrors "github.com/grindlemire/go-flex/internal/errors"
	"github.com/grindlemire/go-flex/internal/layout"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if l, ok := field.Interface().(Length); ok {
				return lengthAmount(l)
			}
			return nil
		}, Length{})

		_ = v.RegisterValidation("angle", func(fl validator.FieldLevel) bool {
			_, err := layout.ParseAngle(fl.Field().String())
			return err == nil
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			s := sl.Current().Interface().(StyleSpec)
			p := s.Padding
			if p.Top < 0 || p.Right < 0 || p.Bottom < 0 || p.Left < 0 {
				sl.ReportError(s.Padding, "padding", "Padding", "nonnegative", "")
			}
		}, StyleSpec{})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema checks on the document and enforces unique ids.
func Validate(doc *Document) error {
	if doc == nil {
		return flexerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]string)
	var walk func(n *NodeSpec, path string) error
	walk = func(n *NodeSpec, path string) error {
		if n.ID != "" {
			if first, dup := seen[n.ID]; dup {
				return flexerrors.NewValidationError(path+".id", fmt.Sprintf("duplicate id %q (first used at %s)", n.ID, first), nil)
			}
			seen[n.ID] = path
		}
		for i, c := range n.Children {
			if err := walk(c, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(doc.Root, "root")
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := strings.TrimPrefix(ve.Namespace(), "Document.")
		msg := fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("failed validation for tag '%s=%s'", ve.Tag(), ve.Param())
		}
		return flexerrors.NewValidationError(field, msg, err)
	}
	return flexerrors.NewValidationError("document", err.Error(), err)
}
