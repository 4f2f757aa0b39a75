package http

import (
	"encoding/json"
	"fmt"
	stdHttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"venue/config"
	"venue/infras/memstore"
	"venue/infras/otel/mocks"
	"venue/shared/cache"
	"venue/shared/constant"
	"venue/transport/http/middleware"
	"venue/transport/http/response"
	"venue/transport/http/router"

	bookingDto "venue/internal/domains/booking/model/dto"
	bookingRepository "venue/internal/domains/booking/repository"
	bookingService "venue/internal/domains/booking/service"
	roomDto "venue/internal/domains/room/model/dto"
	roomRepository "venue/internal/domains/room/repository"
	roomService "venue/internal/domains/room/service"
	bookingHandler "venue/internal/handlers/booking"
	roomHandler "venue/internal/handlers/room"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goRedis.NewClient(&goRedis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Cache.TTL = 60

	otl := mocks.NewOtel()
	redisCache := cache.NewRedisCache(client, otl)
	store := memstore.New()

	roomSvc := roomService.New(roomRepository.New(store, otl), cfg, redisCache, otl)
	bookingSvc := bookingService.New(bookingRepository.New(store, otl), cfg, redisCache, otl)

	domainHandlers := router.DomainHandlers{
		Room:    roomHandler.New(roomSvc, otl),
		Booking: bookingHandler.New(bookingSvc, otl),
	}

	h := New(cfg, router.New(domainHandlers), middleware.NewAppMiddleware(otl, cfg, redisCache))

	server := httptest.NewServer(h.Handler())
	t.Cleanup(server.Close)

	return server
}

func postJSON(t *testing.T, server *httptest.Server, path, body string) *stdHttp.Response {
	t.Helper()

	resp, err := stdHttp.Post(server.URL+path, constant.ContentTypeJSON, strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func getJSON(t *testing.T, server *httptest.Server, path string) *stdHttp.Response {
	t.Helper()

	resp, err := stdHttp.Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decodeBody[T any](t *testing.T, resp *stdHttp.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func bookBody(customer, date, start, end string, roomID int) string {
	return fmt.Sprintf(`{"customerName":%q,"date":%q,"startTime":%q,"endTime":%q,"roomId":%d}`,
		customer, date, start, end, roomID)
}

func TestBookingFlow(t *testing.T) {
	server := newTestServer(t)

	// Create a room and check the assigned ID.
	resp := postJSON(t, server, "/create-room", `{"roomName":"Alpha","seatsAvailable":10,"amenities":["wifi","projector"],"pricePerHour":25.5}`)
	require.Equal(t, stdHttp.StatusCreated, resp.StatusCode)

	created := decodeBody[roomDto.CreateRoomResponse](t, resp)
	assert.Equal(t, constant.ResponseRoomCreated, created.Message)
	assert.Equal(t, 1, created.Room.ID)
	assert.Equal(t, "Alpha", created.Room.RoomName)
	assert.Empty(t, created.Room.Bookings)

	// First booking goes through.
	resp = postJSON(t, server, "/book-room", bookBody("Bob", "2024-03-01", "09:00", "10:00", 1))
	require.Equal(t, stdHttp.StatusCreated, resp.StatusCode)

	booked := decodeBody[bookingDto.CreateBookingResponse](t, resp)
	assert.Equal(t, constant.ResponseRoomBooked, booked.Message)
	assert.Equal(t, "Bob", booked.Booking.CustomerName)

	// An overlapping slot is rejected with the documented message.
	resp = postJSON(t, server, "/book-room", bookBody("Carol", "2024-03-01", "09:30", "10:30", 1))
	require.Equal(t, stdHttp.StatusBadRequest, resp.StatusCode)

	rejected := decodeBody[response.Message](t, resp)
	assert.Equal(t, constant.ResponseRoomUnavailable, rejected.Message)

	// A back-to-back slot starting exactly at the previous end is allowed.
	resp = postJSON(t, server, "/book-room", bookBody("Dan", "2024-03-01", "10:00", "11:00", 1))
	require.Equal(t, stdHttp.StatusCreated, resp.StatusCode)

	// Cache invalidation runs on a detached context; give it a beat.
	time.Sleep(50 * time.Millisecond)

	// The rooms listing projects name and slots only.
	resp = getJSON(t, server, "/rooms")
	require.Equal(t, stdHttp.StatusOK, resp.StatusCode)

	rooms := decodeBody[[]roomDto.RoomSummary](t, resp)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Alpha", rooms[0].RoomName)
	require.Len(t, rooms[0].Bookings, 2)
	assert.Equal(t, "Bob", rooms[0].Bookings[0].CustomerName)
	assert.Equal(t, "Dan", rooms[0].Bookings[1].CustomerName)

	// The customers listing exposes the full ledger in creation order.
	resp = getJSON(t, server, "/customers")
	require.Equal(t, stdHttp.StatusOK, resp.StatusCode)

	records := decodeBody[[]bookingDto.RecordResponse](t, resp)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].RoomID)
	assert.Equal(t, "Alpha", records[0].RoomName)
	assert.Equal(t, "Bob", records[0].CustomerName)
	assert.Equal(t, "Dan", records[1].CustomerName)
}

func TestBookingFlowValidation(t *testing.T) {
	server := newTestServer(t)

	t.Run("create room with missing field", func(t *testing.T) {
		resp := postJSON(t, server, "/create-room", `{"roomName":"Alpha","seatsAvailable":10,"amenities":["wifi"]}`)
		require.Equal(t, stdHttp.StatusBadRequest, resp.StatusCode)

		body := decodeBody[response.Message](t, resp)
		assert.Equal(t, constant.ResponseAllFieldsRequired, body.Message)
	})

	t.Run("create room with null amenities", func(t *testing.T) {
		resp := postJSON(t, server, "/create-room", `{"roomName":"Alpha","seatsAvailable":10,"amenities":null,"pricePerHour":25.5}`)
		require.Equal(t, stdHttp.StatusBadRequest, resp.StatusCode)

		body := decodeBody[response.Message](t, resp)
		assert.Equal(t, constant.ResponseAllFieldsRequired, body.Message)
	})

	t.Run("book room with zero roomId", func(t *testing.T) {
		resp := postJSON(t, server, "/book-room", bookBody("Bob", "2024-03-01", "09:00", "10:00", 0))
		require.Equal(t, stdHttp.StatusBadRequest, resp.StatusCode)

		body := decodeBody[response.Message](t, resp)
		assert.Equal(t, constant.ResponseAllFieldsRequired, body.Message)
	})

	t.Run("book unknown room", func(t *testing.T) {
		resp := postJSON(t, server, "/book-room", bookBody("Bob", "2024-03-01", "09:00", "10:00", 42))
		require.Equal(t, stdHttp.StatusNotFound, resp.StatusCode)

		body := decodeBody[response.Message](t, resp)
		assert.Equal(t, constant.ResponseRoomNotFound, body.Message)
	})
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	resp := getJSON(t, server, "/healthz")
	require.Equal(t, stdHttp.StatusOK, resp.StatusCode)

	body := decodeBody[response.Message](t, resp)
	assert.Equal(t, constant.ResponseHealthy, body.Message)
}
