//go:build e2e

package checkout_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"experience-market/internal/domain/settings"
	"experience-market/internal/domain/user"
	"experience-market/internal/handler/dto/request"
	resdto "experience-market/internal/handler/dto/response"
	"experience-market/internal/pkg/config"
	"experience-market/internal/pkg/cookie"
	"experience-market/tests/common/authtest"
	"experience-market/tests/common/dbtest"
	testhttp "experience-market/tests/common/httptest"
	"experience-market/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

// gatewayStub plays the external payment service: one /charges route, a
// decline switch, and an optional fixed transaction id for dedup tests.
type gatewayStub struct {
	server      *nethttptest.Server
	txnCounter  atomic.Int64
	declineNext atomic.Bool

	mu       sync.Mutex
	fixedTxn string
}

func newGatewayStub() *gatewayStub {
	g := &gatewayStub{}
	g.server = nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charges" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if g.declineNext.Swap(false) {
			w.WriteHeader(http.StatusPaymentRequired)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "card_declined"})
			return
		}

		var body struct {
			AmountCents int64  `json:"amount_cents"`
			Currency    string `json:"currency"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		g.mu.Lock()
		txn := g.fixedTxn
		g.mu.Unlock()
		if txn == "" {
			txn = fmt.Sprintf("txn_%d", g.txnCounter.Add(1))
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"transaction_id": txn,
			"amount_cents":   body.AmountCents,
			"currency":       body.Currency,
		})
	}))
	return g
}

func (g *gatewayStub) setFixedTxn(txn string) {
	g.mu.Lock()
	g.fixedTxn = txn
	g.mu.Unlock()
}

// analyticsStub records every purchase event it receives.
type analyticsStub struct {
	server *nethttptest.Server

	mu     sync.Mutex
	events []map[string]any
}

func newAnalyticsStub() *analyticsStub {
	a := &analyticsStub{}
	a.server = nethttptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event map[string]any
		_ = json.NewDecoder(r.Body).Decode(&event)
		a.mu.Lock()
		a.events = append(a.events, event)
		a.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	return a
}

func (a *analyticsStub) eventCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.events)
}

func (a *analyticsStub) reset() {
	a.mu.Lock()
	a.events = nil
	a.mu.Unlock()
}

type checkoutSuite struct {
	e2e.SharedSuite
	gateway   *gatewayStub
	analytics *analyticsStub
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) SetupSuite() {
	s.gateway = newGatewayStub()
	s.analytics = newAnalyticsStub()
	s.ConfigOpts = []e2e.ConfigOption{
		func(c *config.Config) {
			c.Gateway = config.GatewayConfig{
				APIKey:   "test-api-key",
				Secret:   "test-secret",
				Endpoint: s.gateway.server.URL,
			}
			c.Analytics = config.AnalyticsConfig{Endpoint: s.analytics.server.URL}
		},
	}
	s.SharedSuite.SetupSuite()
}

func (s *checkoutSuite) TearDownSuite() {
	s.gateway.server.Close()
	s.analytics.server.Close()
}

func (s *checkoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.gateway.setFixedTxn("")
	s.analytics.reset()
}

// seedListing creates a host with a complete profile, one experience priced
// at 4000 cents, and a logged-in guest. Returns the experience id and the
// guest's access token.
func (s *checkoutSuite) seedListing(t *testing.T) (uuid.UUID, string) {
	hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleHost))
	dbtest.CreateTestHostProfile(t, s.DB, hostID)
	expID := dbtest.CreateTestExperience(t, s.DB, hostID, "Sunset kayak tour", 4000)
	token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleGuest))
	return expID, token
}

func (s *checkoutSuite) createBooking(t *testing.T, token string, expID uuid.UUID, guests int32) *nethttptest.ResponseRecorder {
	return testhttp.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{ExperienceID: expID, Guests: guests}, token)
}

func (s *checkoutSuite) TestCreateBooking() {
	s.Run("charges the gateway and freezes the commission", func() {
		t := s.T()
		expID, token := s.seedListing(t)

		w := s.createBooking(t, token, expID, 2)

		var booking resdto.BookingResponse
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
		require.Equal(t, "paid", booking.Status)
		require.Equal(t, int64(8000), booking.TotalCents)
		// 8000 × 0.15 + 250 from the seeded settings
		require.Equal(t, int64(1450), booking.CommissionCents)
		require.NotNil(t, booking.GatewayTxnID)

		// Later settings changes must not touch the stored commission.
		dbtest.SetSetting(t, s.DB, settings.KeyCommissionRate, 0.30)

		w = testhttp.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+booking.ID.String(), nil, token)
		var reread resdto.BookingResponse
		testhttp.AssertSuccessResponse(t, w, http.StatusOK, &reread)
		require.Equal(t, int64(1450), reread.CommissionCents)

		// A new booking picks up the new rate: 8000 × 0.30 + 250.
		w = s.createBooking(t, token, expID, 2)
		var second resdto.BookingResponse
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, &second)
		require.Equal(t, int64(2650), second.CommissionCents)
	})

	s.Run("declined charge never leaves the booking paid", func() {
		t := s.T()
		expID, token := s.seedListing(t)

		s.gateway.declineNext.Store(true)
		w := s.createBooking(t, token, expID, 1)
		testhttp.AssertErrorResponse(t, w, http.StatusBadGateway, "Payment failed")

		var paidCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE status = 'paid'").Scan(&paidCount)
		require.NoError(t, err)
		require.Zero(t, paidCount)

		// The released slot is bookable again.
		w = s.createBooking(t, token, expID, 1)
		var booking resdto.BookingResponse
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
		require.Equal(t, "paid", booking.Status)
	})

	s.Run("unknown experience is a 404", func() {
		t := s.T()
		_, token := s.seedListing(t)

		w := s.createBooking(t, token, uuid.New(), 1)
		testhttp.AssertErrorResponse(t, w, http.StatusNotFound, "Experience not found")
	})

	s.Run("anonymous requests are rejected", func() {
		t := s.T()
		expID, _ := s.seedListing(t)

		w := s.createBooking(t, "", expID, 1)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *checkoutSuite) TestReferralAttribution() {
	s.Run("referral cookie is stamped onto the booking", func() {
		t := s.T()
		expID, token := s.seedListing(t)

		// Landing with ?ref= sets the attribution cookie.
		w := testhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/experiences/"+expID.String()+"?ref=partner-x", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		refCookie := testhttp.ExtractCookie(w, cookie.ReferralCookieName)
		require.NotNil(t, refCookie)
		require.Equal(t, "partner-x", refCookie.Value)

		w = testhttp.PerformRequestWithCookies(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ExperienceID: expID, Guests: 1},
			[]*http.Cookie{refCookie}, token)

		var booking resdto.BookingResponse
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
		require.NotNil(t, booking.ReferralCode)
		require.Equal(t, "partner-x", *booking.ReferralCode)
	})

	s.Run("last touch wins", func() {
		t := s.T()
		expID, token := s.seedListing(t)

		w := testhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/experiences/"+expID.String()+"?ref=partner-y", nil, "")
		refCookie := testhttp.ExtractCookie(w, cookie.ReferralCookieName)
		require.NotNil(t, refCookie)

		w = testhttp.PerformRequestWithCookies(t, s.Router, http.MethodGet,
			"/api/experiences/"+expID.String()+"?ref=partner-z", nil, []*http.Cookie{refCookie}, "")
		refCookie = testhttp.ExtractCookie(w, cookie.ReferralCookieName)
		require.NotNil(t, refCookie)
		require.Equal(t, "partner-z", refCookie.Value)

		w = testhttp.PerformRequestWithCookies(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{ExperienceID: expID, Guests: 1},
			[]*http.Cookie{refCookie}, token)

		var booking resdto.BookingResponse
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
		require.NotNil(t, booking.ReferralCode)
		require.Equal(t, "partner-z", *booking.ReferralCode)
	})
}

func (s *checkoutSuite) TestPurchaseReporting() {
	s.Run("each purchase is reported exactly once", func() {
		t := s.T()
		expID, token := s.seedListing(t)

		w := s.createBooking(t, token, expID, 2)
		var booking resdto.BookingResponse
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, &booking)

		require.Eventually(t, func() bool {
			return s.analytics.eventCount() == 1
		}, 5*time.Second, 50*time.Millisecond, "purchase event was not delivered")

		var marked int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM purchase_events WHERE transaction_id = $1", *booking.GatewayTxnID).Scan(&marked)
		require.NoError(t, err)
		require.Equal(t, 1, marked)
	})

	s.Run("duplicate transaction ids are deduplicated", func() {
		t := s.T()
		expID, token := s.seedListing(t)

		s.gateway.setFixedTxn("txn_duplicate")
		w := s.createBooking(t, token, expID, 1)
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		w = s.createBooking(t, token, expID, 1)
		testhttp.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		require.Eventually(t, func() bool {
			return s.analytics.eventCount() >= 1
		}, 5*time.Second, 50*time.Millisecond)

		// Give a straggler a moment, then confirm only one delivery happened.
		time.Sleep(300 * time.Millisecond)
		require.Equal(t, 1, s.analytics.eventCount())
	})
}

// degradedSuite runs the same app with no gateway credentials configured.
type degradedSuite struct {
	e2e.SharedSuite
}

func TestDegradedGatewaySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(degradedSuite))
}

func (s *degradedSuite) TestCreateBookingWhileDegraded() {
	s.Run("fails fast with 503 and never charges", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", string(user.RoleHost))
		dbtest.CreateTestHostProfile(t, s.DB, hostID)
		expID := dbtest.CreateTestExperience(t, s.DB, hostID, "City walking tour", 2500)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", string(user.RoleGuest))

		for range 3 {
			w := testhttp.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
				request.CreateBookingRequest{ExperienceID: expID, Guests: 1}, token)
			testhttp.AssertErrorResponse(t, w, http.StatusServiceUnavailable, "Payment temporarily unavailable")
		}

		var paidCount int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE status = 'paid'").Scan(&paidCount)
		require.NoError(t, err)
		require.Zero(t, paidCount)

		// Everything that does not touch the gateway keeps working.
		w := testhttp.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
