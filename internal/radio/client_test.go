package radio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testSubmission() Submission {
	return Submission{
		SectionID:   "sec123",
		Instrument:  "bass",
		Filename:    "bass_intro.wav",
		Description: "Subtle sub bass drone",
		Audio:       []byte("RIFFfakewavbytes"),
	}
}

func TestSubmitTrackSuccess(t *testing.T) {
	var gotAuth, gotContentType string
	var gotReq graphqlRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"submitTrack": map[string]any{"id": "trk42", "status": "PENDING"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token123")
	track, err := client.SubmitTrack(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("SubmitTrack: %v", err)
	}

	if track.ID != "trk42" || track.Status != "PENDING" {
		t.Errorf("track = %+v, want trk42/PENDING", track)
	}
	if gotAuth != "Bearer token123" {
		t.Errorf("Authorization = %q, want Bearer token123", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if !strings.Contains(gotReq.Query, "submitTrack") {
		t.Errorf("query does not call submitTrack: %q", gotReq.Query)
	}

	wantAudio := base64.StdEncoding.EncodeToString([]byte("RIFFfakewavbytes"))
	vars := gotReq.Variables
	if vars["audioBase64"] != wantAudio {
		t.Errorf("audioBase64 = %q, want %q", vars["audioBase64"], wantAudio)
	}
	if vars["sectionId"] != "sec123" || vars["instrument"] != "bass" {
		t.Errorf("variables = %v", vars)
	}
	if vars["audioFilename"] != "bass_intro.wav" {
		t.Errorf("audioFilename = %v", vars["audioFilename"])
	}
}

func TestSubmitTrackHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token")
	_, err := client.SubmitTrack(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not mention status code", err)
	}
	if !strings.Contains(err.Error(), "internal failure") {
		t.Errorf("error %q does not include body snippet", err)
	}
}

func TestSubmitTrackGraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{
				{"message": "section not found"},
				{"message": "invalid audio"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token")
	_, err := client.SubmitTrack(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("expected error for GraphQL errors")
	}
	if !strings.Contains(err.Error(), "section not found") || !strings.Contains(err.Error(), "invalid audio") {
		t.Errorf("error %q does not join both messages", err)
	}
}

func TestSubmitTrackMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "token")
	_, err := client.SubmitTrack(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("expected error for missing submitTrack payload")
	}
	if !strings.Contains(err.Error(), "malformed") {
		t.Errorf("error %q does not flag malformed response", err)
	}
}

func TestSubmitTrackNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("Authorization header set despite empty token")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"submitTrack": map[string]any{"id": "t", "status": "ok"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	if _, err := client.SubmitTrack(context.Background(), testSubmission()); err != nil {
		t.Fatalf("SubmitTrack: %v", err)
	}
}

func TestSubmitTrackTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "token")
	_, err := client.SubmitTrack(context.Background(), testSubmission())
	if err == nil {
		t.Fatal("expected transport error")
	}
}
