package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nepedu/resulthub/internal/app/auth"
	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

func importWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	cells := [][]interface{}{
		{"name", "symbolNo", "grade"},
		{"Sita Thapa", "S100", 11},
		{"Hari Bahadur", "S101", 12},
	}
	for r, row := range cells {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, value))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func newExcelServiceForTest(schoolRepo *fakeSchoolRepo) *ExcelService {
	return NewExcelService(newFakeStudentRepo(), schoolRepo, auth.NewAuthorizationService(), zerolog.Nop())
}

func TestParseStudentImport_SchoolUserGetsOwnSchoolAttached(t *testing.T) {
	schoolRepo := newFakeSchoolRepo(&models.School{ID: 3, IemisCode: "270040011"})
	svc := newExcelServiceForTest(schoolRepo)

	ownSchool := int64(3)
	user := &models.User{ID: 2, IemisCode: "270040011", Role: models.RoleSchool, SchoolID: &ownSchool}

	resp, err := svc.ParseStudentImport(context.Background(), user, 0, importWorkbook(t))
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.SchoolID)
	require.Len(t, resp.Rows, 2)
	for _, row := range resp.Rows {
		assert.Equal(t, "3", row["schoolId"])
	}
}

func TestParseStudentImport_AdminMustNameSchool(t *testing.T) {
	svc := newExcelServiceForTest(newFakeSchoolRepo(&models.School{ID: 3}))

	_, err := svc.ParseStudentImport(context.Background(), adminUser(), 0, importWorkbook(t))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestParseStudentImport_AdminImportsIntoNamedSchool(t *testing.T) {
	svc := newExcelServiceForTest(newFakeSchoolRepo(&models.School{ID: 7, IemisCode: "270040022"}))

	resp, err := svc.ParseStudentImport(context.Background(), adminUser(), 7, importWorkbook(t))
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.SchoolID)
	assert.Equal(t, "7", resp.Rows[0]["schoolId"])
}

func TestParseStudentImport_OtherSchoolForbidden(t *testing.T) {
	svc := newExcelServiceForTest(newFakeSchoolRepo(&models.School{ID: 3}, &models.School{ID: 9}))

	ownSchool := int64(3)
	user := &models.User{ID: 2, IemisCode: "270040011", Role: models.RoleSchool, SchoolID: &ownSchool}

	_, err := svc.ParseStudentImport(context.Background(), user, 9, importWorkbook(t))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestParseStudentImport_UnknownSchoolRejected(t *testing.T) {
	svc := newExcelServiceForTest(newFakeSchoolRepo())

	_, err := svc.ParseStudentImport(context.Background(), adminUser(), 42, importWorkbook(t))
	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
}

func TestParseStudentImport_GarbageUploadIsBadRequest(t *testing.T) {
	svc := newExcelServiceForTest(newFakeSchoolRepo(&models.School{ID: 3}))

	_, err := svc.ParseStudentImport(context.Background(), adminUser(), 3, bytes.NewBufferString("not a workbook"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
