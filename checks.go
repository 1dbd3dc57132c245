package mdcal

import (
	"context"
	"net/http"
	"strings"

	"github.com/bobg/aesite"
	"github.com/bobg/mid"
	"github.com/pkg/errors"
	"google.golang.org/appengine"
)

var (
	errNoKey    = errors.New("no key field supplied")
	errWrongKey = errors.New("wrong key supplied")
)

func (s *Server) getMasterKey(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.masterKey == "" {
		masterKey, err := aesite.GetSetting(ctx, s.dsClient, "master-key")
		if err != nil {
			return "", err
		}
		s.masterKey = string(masterKey)
	}
	return s.masterKey, nil
}

func (s *Server) checkMasterKey(req *http.Request) error {
	key := req.Header.Get("X-Mdcal-Key")
	if key == "" {
		return errNoKey
	}
	key = strings.TrimSpace(key)

	masterKey, err := s.getMasterKey(req.Context())
	if err != nil {
		return err
	}

	if key != masterKey {
		return errWrongKey
	}
	return nil
}

// Setting changes are open when running locally.
func (s *Server) checkAdmin(req *http.Request) error {
	if !appengine.IsAppEngine() {
		return nil
	}
	err := s.checkMasterKey(req)
	if err != nil {
		return mid.CodeErr{C: http.StatusUnauthorized, Err: err}
	}
	return nil
}
