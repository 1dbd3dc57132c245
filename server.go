package mdcal

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"cloud.google.com/go/datastore"
	"github.com/bobg/mid"
	"google.golang.org/appengine"
)

type Server struct {
	addr     string
	dsClient *datastore.Client

	// now is the clock used to pick default dates.
	now func() time.Time

	mu        sync.Mutex // protects the following cached values
	settings  *Settings
	masterKey string
}

// NewServer creates a server whose settings live in dsClient.
// A nil dsClient means default settings, never stored.
func NewServer(dsClient *datastore.Client) *Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	return &Server{
		addr:     addr,
		dsClient: dsClient,
		now:      time.Now,
	}
}

func (s *Server) today() Date {
	return DateOf(s.now())
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// User-initiated.
	mux.Handle("/", mid.Log(mid.Err(s.handleHome)))
	mux.Handle("/month", mid.Log(mid.Err(s.handleMonth)))
	mux.Handle("/week", mid.Log(mid.Err(s.handleWeek)))
	mux.Handle("/today", mid.Log(mid.Err(s.handleToday)))

	// Admin.
	mux.Handle("/t/setting", mid.Log(mid.Err(s.handleSetting)))

	return mux
}

func (s *Server) Serve(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	if appengine.IsAppEngine() {
		return httpSrv.ListenAndServe()
	}

	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		httpSrv.Shutdown(context.TODO())
		close(done)
	}()

	err := httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		<-done
		return nil
	}
	return err
}
