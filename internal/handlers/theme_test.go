package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"medtrack/internal/medication"
	"medtrack/internal/service/mocks"
)

func TestThemeHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(*mocks.MockThemeService)
		wantStatus int
		wantDark   bool
	}{
		{
			name: "dark",
			mockSetup: func(m *mocks.MockThemeService) {
				m.EXPECT().DarkMode(gomock.Any()).Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantDark:   true,
		},
		{
			name: "light",
			mockSetup: func(m *mocks.MockThemeService) {
				m.EXPECT().DarkMode(gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "storage fault",
			mockSetup: func(m *mocks.MockThemeService) {
				m.EXPECT().DarkMode(gomock.Any()).Return(true, &medication.StorageFault{Op: "read theme", Err: errors.New("io")})
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockThemeService(ctrl)
			tt.mockSetup(svc)

			w := httptest.NewRecorder()
			NewThemeHandler(svc).Get(w, httptest.NewRequest(http.MethodGet, "/api/theme", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("Get() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var body ThemeBody
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil || body.DarkMode == nil {
				t.Fatalf("decode: %v, body %+v", err, body)
			}
			if *body.DarkMode != tt.wantDark {
				t.Errorf("dark_mode = %v, want %v", *body.DarkMode, tt.wantDark)
			}
		})
	}
}

func TestThemeHandler_Put(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockSetup  func(*mocks.MockThemeService)
		wantStatus int
	}{
		{
			name: "set light",
			body: `{"dark_mode": false}`,
			mockSetup: func(m *mocks.MockThemeService) {
				m.EXPECT().SetDarkMode(gomock.Any(), false).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing field",
			body:       `{}`,
			mockSetup:  func(m *mocks.MockThemeService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON",
			body:       `dark`,
			mockSetup:  func(m *mocks.MockThemeService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "storage fault",
			body: `{"dark_mode": true}`,
			mockSetup: func(m *mocks.MockThemeService) {
				m.EXPECT().SetDarkMode(gomock.Any(), true).Return(&medication.StorageFault{Op: "write theme", Err: errors.New("io")})
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockThemeService(ctrl)
			tt.mockSetup(svc)

			w := httptest.NewRecorder()
			NewThemeHandler(svc).Put(w, httptest.NewRequest(http.MethodPut, "/api/theme", encode(t, tt.body)))

			if w.Code != tt.wantStatus {
				t.Errorf("Put() status = %v, want %v", w.Code, tt.wantStatus)
			}
		})
	}
}
