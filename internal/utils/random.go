package utils

import (
	"fmt"
	"math/rand"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"محمد", "أحمد", "خالد", "عمر", "يوسف", "علي", "حسن", "إبراهيم", "سعيد", "طارق",
	"فاطمة", "عائشة", "مريم", "زينب", "سارة", "ليلى", "نور", "هدى", "سلمى", "ريم",
}

var commonFamilyNames = []string{
	"الأحمد", "الخالدي", "العمري", "الحسني", "السعدي", "المصري", "الشامي", "النجار",
	"الحداد", "القاسم", "البكري", "الزهراني", "العتيبي", "الحربي", "المالكي",
}

// latinized maps Arabic given names to Latin transliterations for usernames
// and email addresses.
var latinized = map[string]string{
	"محمد": "mohammed", "أحمد": "ahmed", "خالد": "khaled", "عمر": "omar",
	"يوسف": "yousef", "علي": "ali", "حسن": "hassan", "إبراهيم": "ibrahim",
	"سعيد": "saeed", "طارق": "tarek", "فاطمة": "fatima", "عائشة": "aisha",
	"مريم": "mariam", "زينب": "zainab", "سارة": "sara", "ليلى": "laila",
	"نور": "noor", "هدى": "huda", "سلمى": "salma", "ريم": "reem",
}

var subjects = []string{
	"الرياضيات", "العلوم", "اللغة العربية", "اللغة الإنجليزية",
	"التاريخ", "الجغرافيا", "التربية الإسلامية", "الفيزياء", "الكيمياء", "الحاسوب",
}

var digits = "0123456789"

func GenerateRandomArabicName() (full, first string) {
	first = commonFirstNames[rand.Intn(len(commonFirstNames))]
	family := commonFamilyNames[rand.Intn(len(commonFamilyNames))]
	return first + " " + family, first
}

func GenerateUsernameFromName(firstName string) string {
	username := latinized[firstName]
	if username == "" {
		username = "user"
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomSubjects() []string {
	n := rand.Intn(3) + 1
	picked := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(picked) < n {
		s := subjects[rand.Intn(len(subjects))]
		if seen[s] {
			continue
		}
		seen[s] = true
		picked = append(picked, s)
	}
	return picked
}

func GenerateRandomTeacher(institutionID int64, emailDomainName string) *domain.Teacher {
	fullName, firstName := GenerateRandomArabicName()
	username := GenerateUsernameFromName(firstName)

	return &domain.Teacher{
		InstitutionID: institutionID,
		Name:          fullName,
		Email:         username + "@" + emailDomainName,
		Phone:         GenerateRandomPhone(),
		Subjects:      GenerateRandomSubjects(),
	}
}

func GenerateRandomStudent(classID *int64) *domain.Student {
	fullName, firstName := GenerateRandomArabicName()
	username := GenerateUsernameFromName(firstName)

	return &domain.Student{
		Name:    fullName,
		Email:   username + "@student.example",
		Phone:   GenerateRandomPhone(),
		Grade:   fmt.Sprintf("الصف %d", rand.Intn(12)+1),
		ClassID: classID,
	}
}

func GenerateRandomUser(password string, emailDomainName string, role domain.Role, teacherID *int64) (*domain.User, error) {
	fullName, firstName := GenerateRandomArabicName()
	username := GenerateUsernameFromName(firstName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         role,
		TeacherID:    teacherID,
	}, nil
}

func GenerateRandomPhone() string {
	phone := "05"
	for i := 0; i < 8; i++ {
		phone += string(digits[rand.Intn(len(digits))])
	}
	return phone
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

// GenerateRandomSlot builds a one- or two-hour lesson on a random working day
// between 08:00 and 15:00.
func GenerateRandomSlot(classID, teacherID int64) *domain.TimetableSlot {
	workingDays := []domain.Day{domain.DaySun, domain.DayMon, domain.DayTue, domain.DayWed, domain.DayThu}

	startHour := rand.Intn(7) + 8
	duration := rand.Intn(2) + 1

	return &domain.TimetableSlot{
		ClassID:   classID,
		TeacherID: teacherID,
		Day:       workingDays[rand.Intn(len(workingDays))],
		StartTime: fmt.Sprintf("%02d:00", startHour),
		EndTime:   fmt.Sprintf("%02d:00", startHour+duration),
	}
}
