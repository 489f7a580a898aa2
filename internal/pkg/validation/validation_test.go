package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"client-service/internal/domain/client"
	"client-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindCreate(t *testing.T, body string) (*client.CreateClientRequest, error) {
	t.Helper()
	Register()
	var req client.CreateClientRequest
	err := binding.JSON.BindBody([]byte(body), &req)
	return &req, err
}

func bindPatch(t *testing.T, body string) (*client.PatchClientRequest, error) {
	t.Helper()
	Register()
	var req client.PatchClientRequest
	err := binding.JSON.BindBody([]byte(body), &req)
	return &req, err
}

func locs(errs []response.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, strings.Join(e.Loc, "."))
	}
	return out
}

func TestCreate_Valid(t *testing.T) {
	req, err := bindCreate(t, `{"nom":"Durand","prenom":"Alice","adresse":"1 rue Test","email":"pas un email"}`)
	require.NoError(t, err)
	assert.Equal(t, "Durand", *req.LastName)
	assert.Equal(t, "pas un email", req.Email.Value)
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	_, err := bindCreate(t, `{"nom":"X"}`)
	require.Error(t, err)

	errs := Translate(err)
	assert.ElementsMatch(t, []string{"body.prenom", "body.adresse"}, locs(errs))
	for _, e := range errs {
		assert.Equal(t, "missing", e.Type)
	}
}

func TestCreate_NullRequiredField(t *testing.T) {
	_, err := bindCreate(t, `{"nom":null,"prenom":"A","adresse":"B"}`)
	require.Error(t, err)
	assert.Equal(t, []string{"body.nom"}, locs(Translate(err)))
}

func TestCreate_ExtraField(t *testing.T) {
	_, err := bindCreate(t, `{"nom":"Test","prenom":"User","adresse":"AAA","inexistant":"should_fail"}`)
	require.Error(t, err)

	errs := Translate(err)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"body", "inexistant"}, errs[0].Loc)
	assert.Equal(t, "extra_forbidden", errs[0].Type)
}

func TestCreate_WrongType(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"number for string", `{"nom":123,"prenom":"A","adresse":"B"}`},
		{"bool for string", `{"nom":"A","prenom":true,"adresse":"B"}`},
		{"list for string", `{"nom":"A","prenom":"B","adresse":["x"]}`},
		{"string for newsletter", `{"nom":"A","prenom":"B","adresse":"C","newsletter":"oui"}`},
		{"optional string given a number", `{"nom":"A","prenom":"B","adresse":"C","tel":612345678}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bindCreate(t, tt.body)
			require.Error(t, err)

			errs := Translate(err)
			require.Len(t, errs, 1)
			assert.Equal(t, "type_error", errs[0].Type)
			assert.Equal(t, "body", errs[0].Loc[0])
		})
	}
}

func TestCreate_TooLong(t *testing.T) {
	_, err := bindCreate(t, `{"nom":"`+strings.Repeat("n", 41)+`","prenom":"A","adresse":"B"}`)
	require.Error(t, err)

	errs := Translate(err)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"body", "nom"}, errs[0].Loc)
	assert.Equal(t, "string_too_long", errs[0].Type)
}

func TestCreate_LengthCountsCharacters(t *testing.T) {
	_, err := bindCreate(t, `{"nom":"`+strings.Repeat("é", 40)+`","prenom":"A","adresse":"B"}`)
	assert.NoError(t, err)
}

func TestCreate_EmptyAndMalformedBody(t *testing.T) {
	_, err := bindCreate(t, ``)
	require.Error(t, err)
	assert.Equal(t, "missing", Translate(err)[0].Type)

	_, err = bindCreate(t, `{"nom":`)
	require.Error(t, err)
	assert.Equal(t, []string{"body"}, Translate(err)[0].Loc)
	assert.Equal(t, "json_invalid", Translate(err)[0].Type)

	_, err = bindCreate(t, `{"nom" "x"}`)
	require.Error(t, err)
	assert.Equal(t, "json_invalid", Translate(err)[0].Type)
}

func TestPatch_EmptyIsValid(t *testing.T) {
	req, err := bindPatch(t, `{}`)
	require.NoError(t, err)
	assert.Empty(t, req.Fields())
}

func TestPatch_UnknownFieldRejected(t *testing.T) {
	_, err := bindPatch(t, `{"truc":"invalide"}`)
	require.Error(t, err)
	assert.Equal(t, []string{"body.truc"}, locs(Translate(err)))
}

func TestPatch_NullOnRequiredColumns(t *testing.T) {
	_, err := bindPatch(t, `{"nom":null,"adresse":null}`)
	require.Error(t, err)

	errs := Translate(err)
	assert.ElementsMatch(t, []string{"body.nom", "body.adresse"}, locs(errs))
	for _, e := range errs {
		assert.Equal(t, "null_forbidden", e.Type)
	}
}

func TestPatch_NullOnOptionalColumns(t *testing.T) {
	req, err := bindPatch(t, `{"genre":null,"email":null,"newsletter":null}`)
	require.NoError(t, err)
	assert.Len(t, req.Fields(), 3)
}

func TestPatch_TooLong(t *testing.T) {
	_, err := bindPatch(t, `{"tel":"01234567890"}`)
	require.Error(t, err)
	assert.Equal(t, []string{"body.tel"}, locs(Translate(err)))
}

func TestInvalidInteger(t *testing.T) {
	errs := InvalidInteger("client_id")
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"path", "client_id"}, errs[0].Loc)
	assert.Equal(t, "int_parsing", errs[0].Type)
}

func bindRequest(t *testing.T, body string, obj any) error {
	t.Helper()
	Register()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	return BindJSON(c, obj)
}

func TestBindJSON_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{`null`, ` null `, `[]`, `"x"`, `true`, `7`} {
		var req client.PatchClientRequest
		err := bindRequest(t, body, &req)
		require.ErrorIs(t, err, ErrNotObject, body)

		errs := Translate(err)
		require.Len(t, errs, 1)
		assert.Equal(t, []string{"body"}, errs[0].Loc)
		assert.Equal(t, "model_attributes_type", errs[0].Type)
	}
}

func TestBindJSON_Object(t *testing.T) {
	var req client.PatchClientRequest
	require.NoError(t, bindRequest(t, ` {"nom":"Durand"}`, &req))
	assert.Equal(t, client.Fields{client.ColumnLastName: "Durand"}, req.Fields())

	err := bindRequest(t, ``, &client.PatchClientRequest{})
	require.Error(t, err)
	assert.Equal(t, "missing", Translate(err)[0].Type)
}

func TestNewsletter_Range(t *testing.T) {
	_, err := bindCreate(t, `{"nom":"A","prenom":"B","adresse":"C","newsletter":2147483647}`)
	assert.NoError(t, err)

	_, err = bindCreate(t, `{"nom":"A","prenom":"B","adresse":"C","newsletter":2147483648}`)
	require.Error(t, err)
	errs := Translate(err)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"body", "newsletter"}, errs[0].Loc)
	assert.Equal(t, "less_than_equal", errs[0].Type)

	_, err = bindPatch(t, `{"newsletter":-2147483649}`)
	require.Error(t, err)
	errs = Translate(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "greater_than_equal", errs[0].Type)

	_, err = bindPatch(t, `{"newsletter":0}`)
	assert.NoError(t, err)
}
