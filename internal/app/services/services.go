package services

// Services defined in this package:
// - AuthService: registration, login, token refresh, password recovery
// - UserService: admin-side account management
// - SchoolService: school tenant management
// - StudentService: student records within a school scope
// - SubjectService: shared subject catalog
// - AssignmentService: per-student subject assignment sets
// - MarksService: exam result entry
// - SummaryService: marksheets and dashboard aggregates
// - ExcelService: roster workbook import and export
// - AcademicYearService: selectable exam years
// - SettingService: global application settings
