package owners_test

import (
	"net/http"
	"net/url"
	"testing"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/validation"
	"petclinic/internal/platform/web"
	"petclinic/internal/platform/web/webtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ownerWithBella() owners.Owner {
	o := janeDoe(123)
	o.Pets = []owners.Pet{{
		ID:        1,
		OwnerID:   123,
		Name:      "Bella",
		BirthDate: date("1970-01-02"),
		Type:      owners.PetType{ID: 2, Name: "dog"},
	}}
	return o
}

func TestPet_InitCreationForm(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(janeDoe(123), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil).Once()

	rec := f.get("/owners/123/pets/new")

	assert.Equal(t, http.StatusOK, rec.Code)
	v := lastView(t, f)
	assert.Equal(t, owners.ViewPetForm, v.Name)
	assert.Equal(t, []string{"owner", "pet", "types"}, webtest.Keys(v.Model))
	pet := v.Model["pet"].(owners.Pet)
	assert.True(t, pet.IsNew())
	assert.Equal(t, 123, pet.OwnerID)
	assert.Len(t, v.Model["types"], 3)
}

func TestPet_InitCreationForm_UnknownOwner(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 9).Return(owners.Owner{}, owners.ErrNotFound).Once()

	rec := f.get("/owners/9/pets/new")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, web.ViewError, lastView(t, f).Name)
	f.pets.AssertNotCalled(t, "FindPetTypes", mock.Anything)
}

func TestPet_ProcessCreationForm_Empty(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(janeDoe(123), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil).Once()

	rec := f.post("/owners/123/pets/new", url.Values{})

	assert.Equal(t, http.StatusOK, rec.Code)
	v := lastView(t, f)
	assert.Equal(t, owners.ViewPetForm, v.Name)
	assert.Equal(t, []string{"owner", "pet", "types"}, webtest.Keys(v.Model))
	assert.True(t, v.Errors.Has("name"))
	assert.True(t, v.Errors.Has("birthDate"))
	assert.True(t, v.Errors.Has("type"))
	f.pets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPet_ProcessCreationForm_NameOnly(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(janeDoe(123), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil).Once()

	rec := f.post("/owners/123/pets/new", url.Values{"name": {"Bella"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	v := lastView(t, f)
	assert.Equal(t, owners.ViewPetForm, v.Name)
	assert.False(t, v.Errors.Has("name"))
	assert.True(t, v.Errors.Has("birthDate"))
	assert.Equal(t, "Bella", v.Model["pet"].(owners.Pet).Name)
}

func TestPet_ProcessCreationForm_DuplicateName(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(ownerWithBella(), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil)

	rec := f.post("/owners/123/pets/new", url.Values{
		"name":      {"bella"},
		"birthDate": {"2020-02-02"},
		"type":      {"cat"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	v := lastView(t, f)
	require.Len(t, v.Errors, 1)
	assert.Equal(t, "name", v.Errors[0].Field)
	assert.Equal(t, validation.CodeDuplicate, v.Errors[0].Code)
}

func TestPet_ProcessCreationForm_InvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		form  url.Values
		field string
	}{
		{"future birth date", url.Values{"name": {"Rex"}, "birthDate": {"2024-05-02"}, "type": {"dog"}}, "birthDate"},
		{"bad birth date", url.Values{"name": {"Rex"}, "birthDate": {"02/05/2020"}, "type": {"dog"}}, "birthDate"},
		{"unknown type", url.Values{"name": {"Rex"}, "birthDate": {"2020-05-02"}, "type": {"dragon"}}, "type"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.owners.On("FindByID", mock.Anything, 123).Return(janeDoe(123), nil).Once()
			f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil)

			rec := f.post("/owners/123/pets/new", tc.form)

			assert.Equal(t, http.StatusOK, rec.Code)
			v := lastView(t, f)
			require.Len(t, v.Errors, 1)
			assert.Equal(t, tc.field, v.Errors[0].Field)
			assert.Equal(t, validation.CodeTypeMismatch, v.Errors[0].Code)
		})
	}
}

func TestPet_ProcessCreationForm_Success(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(janeDoe(123), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil)
	f.pets.On("Save", mock.Anything, mock.MatchedBy(func(p owners.Pet) bool {
		return p.IsNew() &&
			p.OwnerID == 123 &&
			p.Name == "Betty" &&
			p.Type.ID == 2 &&
			p.BirthDate != nil && p.BirthDate.Format(owners.DateLayout) == "2015-02-12"
	})).Return(owners.Pet{ID: 14, OwnerID: 123, Name: "Betty"}, nil).Once()

	rec := f.post("/owners/123/pets/new", url.Values{
		"name":      {"Betty"},
		"birthDate": {"2015-02-12"},
		"type":      {"DOG"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/owners/123", rec.Header().Get("Location"))
}

func TestPet_InitUpdateForm(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(ownerWithBella(), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil).Once()

	rec := f.get("/owners/123/pets/1/edit")

	assert.Equal(t, http.StatusOK, rec.Code)
	v := lastView(t, f)
	assert.Equal(t, owners.ViewPetForm, v.Name)
	assert.Equal(t, []string{"owner", "pet", "types"}, webtest.Keys(v.Model))
	assert.Equal(t, "Bella", v.Model["pet"].(owners.Pet).Name)
}

func TestPet_InitUpdateForm_PetOfAnotherOwner(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(ownerWithBella(), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil).Once()

	rec := f.get("/owners/123/pets/2/edit")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, web.ViewError, lastView(t, f).Name)
}

func TestPet_ProcessUpdateForm_Empty(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(ownerWithBella(), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil).Once()

	rec := f.post("/owners/123/pets/1/edit", url.Values{})

	assert.Equal(t, http.StatusOK, rec.Code)
	v := lastView(t, f)
	assert.Equal(t, owners.ViewPetForm, v.Name)
	assert.Equal(t, []string{"owner", "pet", "types"}, webtest.Keys(v.Model))
	assert.True(t, v.Errors.Has("name"))
	assert.True(t, v.Errors.Has("birthDate"))
	// el tipo vacío conserva el actual
	assert.False(t, v.Errors.Has("type"))
	assert.Equal(t, "dog", v.Model["pet"].(owners.Pet).Type.Name)
}

func TestPet_ProcessUpdateForm_Success(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(ownerWithBella(), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil)
	f.pets.On("Save", mock.Anything, mock.MatchedBy(func(p owners.Pet) bool {
		return p.ID == 1 && p.Name == "Bella" && p.Type.Name == "cat"
	})).Return(owners.Pet{ID: 1, OwnerID: 123, Name: "Bella"}, nil).Once()

	rec := f.post("/owners/123/pets/1/edit", url.Values{
		"name":      {"Bella"},
		"birthDate": {"1970-01-02"},
		"type":      {"cat"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/owners/123", rec.Header().Get("Location"))
}

func TestPet_ProcessUpdateForm_UnknownPet(t *testing.T) {
	f := newFixture(t)
	f.owners.On("FindByID", mock.Anything, 123).Return(ownerWithBella(), nil).Once()
	f.pets.On("FindPetTypes", mock.Anything).Return(petTypes(), nil).Once()

	rec := f.post("/owners/123/pets/77/edit", url.Values{"name": {"Ghost"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.pets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
