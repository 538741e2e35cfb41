package navigator

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNavigator(opts ...Option) *Navigator {
	return New(catalog.Default(), opts...)
}

func TestResolve_Home(t *testing.T) {
	n := newTestNavigator()

	tests := []struct {
		name    string
		code    string
		action  Action
		errLike error
	}{
		{"activatable product", "SC7", ActionShowProduct, nil},
		{"lower case code", "iv8", ActionShowProduct, nil},
		{"unknown code", "JUNK", ActionToast, ErrUnknownCode},
		{"placeholder", "PL0", ActionToast, ErrPlaceholderCode},
		{"home code", "HOME", ActionIgnore, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := n.Resolve(ViewHome, tt.code)
			assert.Equal(t, tt.action, d.Action)
			if tt.errLike == nil {
				assert.NoError(t, d.Err)
			} else {
				assert.ErrorIs(t, d.Err, tt.errLike)
			}
		})
	}
}

func TestResolve_Product(t *testing.T) {
	n := newTestNavigator()

	d := n.Resolve(ViewProduct, "VC9")
	assert.Equal(t, ActionShowProduct, d.Action)
	assert.Equal(t, "Vibe Ce-real", d.Product.Name)

	d = n.Resolve(ViewProduct, "JUNK")
	assert.Equal(t, ActionGoHome, d.Action)
	assert.True(t, IsUnknownCode(d.Err))

	d = n.Resolve(ViewProduct, "PL0")
	assert.Equal(t, ActionGoHome, d.Action)
	assert.True(t, IsPlaceholderCode(d.Err))

	d = n.Resolve(ViewProduct, "home")
	assert.Equal(t, ActionGoHome, d.Action)
	assert.NoError(t, d.Err)
}

func TestResolve_CustomHomeCode(t *testing.T) {
	n := newTestNavigator(WithHomeCode(" back "))
	assert.Equal(t, "BACK", n.HomeCode())

	assert.Equal(t, ActionIgnore, n.Resolve(ViewHome, "BACK").Action)
	assert.Equal(t, ActionToast, n.Resolve(ViewHome, "HOME").Action)
}

func TestResolve_NoHomeCode(t *testing.T) {
	n := newTestNavigator(WithHomeCode(""))

	d := n.Resolve(ViewHome, "HOME")
	assert.Equal(t, ActionToast, d.Action)
}

func TestCodeError(t *testing.T) {
	n := newTestNavigator()

	d := n.Resolve(ViewHome, "junk")

	var codeErr *CodeError
	require.True(t, errors.As(d.Err, &codeErr))
	assert.Equal(t, "JUNK", codeErr.Code)
	assert.Equal(t, "JUNK: unknown barcode", codeErr.Error())
	assert.Equal(t, "JUNK", d.Code)
}

func TestSelect(t *testing.T) {
	n := newTestNavigator()

	d := n.Select("FM3")
	assert.Equal(t, ActionShowProduct, d.Action)
	assert.Equal(t, "FM3", d.Product.Code)

	d = n.Select("PL0")
	assert.Equal(t, ActionIgnore, d.Action)
	assert.NoError(t, d.Err)
}

func TestProduct(t *testing.T) {
	n := newTestNavigator()

	p, err := n.Product("wt2")
	require.NoError(t, err)
	assert.Equal(t, "Whatever Tea", p.Name)

	_, err = n.Product("PL0")
	assert.True(t, IsPlaceholderCode(err))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "home", ViewHome.String())
	assert.Equal(t, "product", ViewProduct.String())
	assert.Equal(t, "go_home", ActionGoHome.String())
	assert.Equal(t, "unknown", Action(99).String())
}
