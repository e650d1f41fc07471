package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

// ReportService renders a user's attendance history for administrators.
// The ordered record sequence comes from the attendance repository; this
// service only formats.
type ReportService interface {
	// AttendanceReport returns the user's records, oldest first
	AttendanceReport(ctx context.Context, userID string) (user.User, []attendance.Attendance, error)

	// WriteXLSX renders the report as an XLSX workbook
	WriteXLSX(ctx context.Context, userID string, w io.Writer) (filename string, err error)
}

type ReportServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
}

func NewReportService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	loc *time.Location,
) ReportService {
	return &ReportServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
	}
}

// AttendanceReport implements ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, userID string) (user.User, []attendance.Attendance, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, nil, err
	}

	records, err := s.attendanceRepo.ReportByUser(ctx, userID)
	if err != nil {
		return user.User{}, nil, err
	}

	return u, records, nil
}

// WriteXLSX implements ReportService.
func (s *ReportServiceImpl) WriteXLSX(ctx context.Context, userID string, w io.Writer) (string, error) {
	u, records, err := s.AttendanceReport(ctx, userID)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Laporan Absensi"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(sheet, "A1", "Laporan Absensi Peserta Magang")
	f.SetCellValue(sheet, "A2", "Nama")
	f.SetCellValue(sheet, "B2", u.Name)
	f.SetCellValue(sheet, "A3", "Username")
	f.SetCellValue(sheet, "B3", u.Username)
	if u.HasInternshipWindow() {
		f.SetCellValue(sheet, "A4", "Periode")
		f.SetCellValue(sheet, "B4", fmt.Sprintf("%s s/d %s",
			u.InternshipStart.Format("2006-01-02"),
			u.InternshipEnd.Format("2006-01-02")))
	}

	headers := []string{"No", "Tanggal", "Hari", "Status", "Jam Check-In", "Keterangan"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 6)
		f.SetCellValue(sheet, cell, h)
	}

	counts := make(map[attendance.Status]int)
	for i, rec := range records {
		row := i + 7
		counts[rec.Status]++

		checkIn := "-"
		if rec.CheckInTime != nil {
			checkIn = rec.CheckInTime.In(s.loc).Format("15:04:05")
		}
		notes := ""
		if rec.Notes != nil {
			notes = *rec.Notes
		}

		values := []interface{}{
			i + 1,
			rec.Date.Format("2006-01-02"),
			rec.Date.Weekday().String(),
			string(rec.Status),
			checkIn,
			notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	summaryRow := len(records) + 8
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Rekapitulasi")
	summary := []struct {
		label  string
		status attendance.Status
	}{
		{"Hadir", attendance.StatusPresent},
		{"Tidak Hadir", attendance.StatusNotPresent},
		{"Di Luar Area", attendance.StatusOutOfArea},
		{"Izin", attendance.StatusLeaveRequested},
		{"Izin Disetujui", attendance.StatusLeaveApproved},
	}
	for i, item := range summary {
		row := summaryRow + 1 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), counts[item.status])
	}

	if err := f.Write(w); err != nil {
		return "", fmt.Errorf("failed to write XLSX report: %w", err)
	}

	filename := fmt.Sprintf("Laporan Absensi - %s.xlsx", u.Name)
	return filename, nil
}
