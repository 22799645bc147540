//go:build unit

package response_test

import (
	"testing"
	"time"

	resdto "vidly/internal/handler/dto/response"
	"vidly/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRentalView_MatchesDomainMapping(t *testing.T) {
	dateOut := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rb := builder.NewRentalBuilder().WithDateOut(dateOut).Returned(dateOut.Add(72*time.Hour), 600)

	fromView := resdto.FromRentalView(rb.BuildView())
	fromDomain := resdto.FromRental(rb.BuildDomain())

	if diff := cmp.Diff(fromDomain, fromView); diff != "" {
		t.Errorf("rental response mismatch (-domain +view):\n%s", diff)
	}
	require.NotNil(t, fromView.RentalFee)
	assert.InDelta(t, 6.0, *fromView.RentalFee, 0.0001)
}

func TestFromRental_OpenRentalHasNoFee(t *testing.T) {
	rent := builder.NewRentalBuilder().BuildDomain()

	resp := resdto.FromRental(rent)

	assert.Nil(t, resp.DateReturned)
	assert.Nil(t, resp.RentalFee)
	assert.True(t, rent.IsOpen())
}

func TestFromMovieView_CopiesNestedGenre(t *testing.T) {
	mb := builder.NewMovieBuilder().WithRateCents(350)

	resp := resdto.FromMovieView(mb.BuildView())

	assert.Equal(t, mb.ID, resp.ID)
	assert.Equal(t, mb.Genre.ID, resp.Genre.ID)
	assert.Equal(t, mb.Genre.Name, resp.Genre.Name)
	assert.InDelta(t, 3.5, resp.DailyRentalRate, 0.0001)
	if diff := cmp.Diff(resdto.FromMovie(mb.BuildDomain()), resp); diff != "" {
		t.Errorf("movie response mismatch (-domain +view):\n%s", diff)
	}
}
