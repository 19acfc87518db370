package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/model"
	"portfolio-api/pkg/apperror"
)

type stubCVService struct {
	uploadCV     *model.CV
	uploadErr    error
	uploadCalled bool
	getInfo      *dto.CVInfoResponse
	getErr       error
	deleteErr    error
}

func (s *stubCVService) Upload(ctx context.Context, file *multipart.FileHeader) (*model.CV, error) {
	s.uploadCalled = true
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return s.uploadCV, nil
}

func (s *stubCVService) GetCurrent(ctx context.Context) (*dto.CVInfoResponse, error) {
	return s.getInfo, s.getErr
}

func (s *stubCVService) Delete(ctx context.Context) error {
	return s.deleteErr
}

func cvRouter(svc *stubCVService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCVHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/cv/upload", h.Upload)
	r.GET("/api/cv", h.GetCurrent)
	r.DELETE("/api/cv", h.Delete)
	return r
}

func multipartBody(t *testing.T, field, fileName, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	hdr.Set("Content-Type", contentType)

	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["msg"].(string)
	return msg
}

func TestCVHandler_Upload_NoFile(t *testing.T) {
	svc := &stubCVService{}
	r := cvRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cv/upload", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded. Please select a PDF file.", decodeMsg(t, rec))
	assert.False(t, svc.uploadCalled)
}

func TestCVHandler_Upload_RejectsNonPDF(t *testing.T) {
	svc := &stubCVService{
		uploadErr: apperror.BadRequest("Not a PDF file! Only PDF files are allowed."),
	}
	r := cvRouter(svc)

	body, contentType := multipartBody(t, "cvFile", "resume.txt", "text/plain", []byte("plain text"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cv/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Not a PDF file! Only PDF files are allowed.", decodeMsg(t, rec))
	assert.True(t, svc.uploadCalled)
}

func TestCVHandler_Upload_Success(t *testing.T) {
	svc := &stubCVService{
		uploadCV: &model.CV{FileName: "cvFile-1-aaaa.pdf", OriginalName: "resume.pdf"},
	}
	r := cvRouter(svc)

	body, contentType := multipartBody(t, "cvFile", "resume.pdf", "application/pdf", []byte("%PDF-1.7"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cv/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "CV uploaded successfully", decodeMsg(t, rec))
	assert.Contains(t, rec.Body.String(), "resume.pdf")
}

func TestCVHandler_GetCurrent_NotFound(t *testing.T) {
	svc := &stubCVService{
		getErr: apperror.NotFound("No CV found"),
	}
	r := cvRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cv", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No CV found", decodeMsg(t, rec))
}

func TestCVHandler_InternalErrorIsGeneric(t *testing.T) {
	svc := &stubCVService{
		getErr: assert.AnError,
	}
	r := cvRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cv", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Server Error", decodeMsg(t, rec))
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
