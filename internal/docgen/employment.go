package docgen

import (
	"fmt"
	"time"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/docx"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

func companyPlaceholders() []Placeholder {
	return []Placeholder{
		{Key: "companyName", Label: "Company Name", ProfileField: ProfileCompanyName},
		{Key: "companyAddress", Label: "Company Address", ProfileField: ProfileAddress},
		{Key: "companyTaxNumber", Label: "Company Tax Number", ProfileField: ProfileTaxNumber},
		{Key: "companyManager", Label: "Company Manager", ProfileField: ProfileManager},
	}
}

func renderEmploymentContract(formData map[string]string, profile domain.CompanyProfile, now time.Time) (*domain.GeneratedDocument, error) {
	placeholders := append(companyPlaceholders(),
		Placeholder{Key: "employeeName", Label: "Employee Name"},
		Placeholder{Key: "employeeAddress", Label: "Employee Address"},
		Placeholder{Key: "employeeID", Label: "Employee ID Number"},
		Placeholder{Key: "position", Label: "Position"},
		Placeholder{Key: "startDate", Label: "Start Date"},
		Placeholder{Key: "salary", Label: "Salary"},
		Placeholder{Key: "contractDuration", Label: "Contract Duration"},
		Placeholder{Key: "workTasks", Label: "Work Tasks"},
		Placeholder{Key: "dailyWorkHours", Label: "Daily Work Hours"},
	)
	ctx := BuildContext(placeholders, formData, profile, now)

	b := docx.NewBuilder()
	b.AddHeading("ДОГОВОР ЗА ВРАБОТУВАЊЕ")
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf(
		"Склучен на ден %s, помеѓу:",
		ctx.Today()))
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf(
		"1. %s, со седиште на %s, даночен број %s, претставувано од управителот %s (во натамошниот текст: работодавач), и",
		ctx.Get("companyName"), ctx.Get("companyAddress"), ctx.Get("companyTaxNumber"), ctx.Get("companyManager")))
	b.AddParagraph(fmt.Sprintf(
		"2. %s, со живеалиште на %s, ЕМБГ %s (во натамошниот текст: работник).",
		ctx.Get("employeeName"), ctx.Get("employeeAddress"), ctx.Get("employeeID")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 1 — Предмет на договорот")
	b.AddParagraph(fmt.Sprintf(
		"Работникот заснова работен однос кај работодавачот на работното место %s, со работен однос на %s, почнувајќи од %s.",
		ctx.Get("position"), ctx.Get("contractDuration"), ctx.Date("startDate")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 2 — Работни задачи")
	b.AddParagraph(ctx.Get("workTasks"))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 3 — Плата")
	b.AddParagraph(fmt.Sprintf(
		"Основната месечна нето плата на работникот изнесува %s денари и се исплаќа најдоцна до 15-ти во месецот за претходниот месец.",
		ctx.Get("salary")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 4 — Работно време")
	b.AddParagraph(fmt.Sprintf(
		"Полното работно време на работникот изнесува %s часа дневно, односно 40 часа неделно, распоредени во пет работни дена.",
		ctx.Get("dailyWorkHours")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 5 — Завршни одредби")
	b.AddParagraph(
		"За сè што не е уредено со овој договор ќе се применуваат одредбите на Законот за работните односи. Договорот е составен во два еднакви примероци, по еден за секоја договорна страна.")
	b.AddEmptyLine()
	b.AddEmptyLine()
	signatureBlock(b, ctx.Get("companyName"), ctx.Get("employeeName"))

	content, err := b.ProduceBytes()
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedDocument{
		Filename: Filename("Договор за вработување", ctx.Get("employeeName")),
		Content:  content,
	}, nil
}

func renderEmploymentAnnex(formData map[string]string, profile domain.CompanyProfile, now time.Time) (*domain.GeneratedDocument, error) {
	placeholders := append(companyPlaceholders(),
		Placeholder{Key: "employeeName", Label: "Employee Name"},
		Placeholder{Key: "position", Label: "Position"},
		Placeholder{Key: "changeType", Label: "Change Type"},
		Placeholder{Key: "effectiveDate", Label: "Effective Date"},
		Placeholder{Key: "newSalary", Label: "New Salary"},
		Placeholder{Key: "changeDescription", Label: "Change Description"},
	)
	ctx := BuildContext(placeholders, formData, profile, now)

	b := docx.NewBuilder()
	b.AddHeading("АНЕКС НА ДОГОВОР ЗА ВРАБОТУВАЊЕ")
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf(
		"Работодавачот %s, со седиште на %s, и работникот %s, на работното место %s, на ден %s го склучуваат следниот анекс:",
		ctx.Get("companyName"), ctx.Get("companyAddress"), ctx.Get("employeeName"), ctx.Get("position"), ctx.Today()))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 1")
	b.AddParagraph(fmt.Sprintf(
		"Со овој анекс се врши %s на договорот за вработување, со примена од %s.",
		ctx.Get("changeType"), ctx.Date("effectiveDate")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 2")
	b.AddParagraph(fmt.Sprintf(
		"Новата основна месечна плата изнесува %s денари. %s",
		ctx.Get("newSalary"), ctx.Get("changeDescription")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 3")
	b.AddParagraph("Останатите одредби на договорот за вработување остануваат непроменети.")
	b.AddEmptyLine()
	b.AddEmptyLine()
	signatureBlock(b, ctx.Get("companyName"), ctx.Get("employeeName"))

	content, err := b.ProduceBytes()
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedDocument{
		Filename: Filename("Анекс на договор за вработување", ctx.Get("employeeName")),
		Content:  content,
	}, nil
}

func renderTerminationDecision(formData map[string]string, profile domain.CompanyProfile, now time.Time) (*domain.GeneratedDocument, error) {
	placeholders := append(companyPlaceholders(),
		Placeholder{Key: "employeeName", Label: "Employee Name"},
		Placeholder{Key: "position", Label: "Position"},
		Placeholder{Key: "terminationDate", Label: "Termination Date"},
		Placeholder{Key: "terminationReason", Label: "Termination Reason"},
		Placeholder{Key: "noticePeriod", Label: "Notice Period"},
	)
	ctx := BuildContext(placeholders, formData, profile, now)

	b := docx.NewBuilder()
	b.AddHeading("ОДЛУКА ЗА ПРЕСТАНОК НА РАБОТЕН ОДНОС")
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf(
		"Врз основа на Законот за работните односи, работодавачот %s, со седиште на %s, претставуван од %s, на ден %s ја донесува следната одлука:",
		ctx.Get("companyName"), ctx.Get("companyAddress"), ctx.Get("companyManager"), ctx.Today()))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 1")
	b.AddParagraph(fmt.Sprintf(
		"На работникот %s, на работното место %s, му престанува работниот однос заклучно со %s.",
		ctx.Get("employeeName"), ctx.Get("position"), ctx.Date("terminationDate")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 2 — Образложение")
	b.AddParagraph(ctx.Get("terminationReason"))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 3")
	b.AddParagraph(fmt.Sprintf(
		"Отказниот рок изнесува %s дена и почнува да тече од денот на врачувањето на оваа одлука.",
		ctx.Get("noticePeriod")))
	b.AddEmptyLine()
	b.AddParagraph(
		"Правна поука: против оваа одлука работникот има право на приговор во рок од осум дена од денот на приемот.")
	b.AddEmptyLine()
	b.AddEmptyLine()
	signatureBlock(b, ctx.Get("companyName"), ctx.Get("employeeName"))

	content, err := b.ProduceBytes()
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedDocument{
		Filename: Filename("Одлука за престанок на работен однос", ctx.Get("employeeName")),
		Content:  content,
	}, nil
}

func renderAnnualLeaveDecision(formData map[string]string, profile domain.CompanyProfile, now time.Time) (*domain.GeneratedDocument, error) {
	placeholders := append(companyPlaceholders(),
		Placeholder{Key: "employeeName", Label: "Employee Name"},
		Placeholder{Key: "position", Label: "Position"},
		Placeholder{Key: "leaveStartDate", Label: "Leave Start Date"},
		Placeholder{Key: "leaveEndDate", Label: "Leave End Date"},
		Placeholder{Key: "leaveDays", Label: "Leave Days"},
		Placeholder{Key: "leaveYear", Label: "Leave Year"},
	)
	ctx := BuildContext(placeholders, formData, profile, now)

	b := docx.NewBuilder()
	b.AddHeading("РЕШЕНИЕ ЗА ГОДИШЕН ОДМОР")
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf(
		"Работодавачот %s, со седиште на %s, на ден %s го донесува следното решение:",
		ctx.Get("companyName"), ctx.Get("companyAddress"), ctx.Today()))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 1")
	b.AddParagraph(fmt.Sprintf(
		"На работникот %s, на работното место %s, му се одобрува користење на платен годишен одмор за %s година во траење од %s работни дена.",
		ctx.Get("employeeName"), ctx.Get("position"), ctx.Get("leaveYear"), ctx.Get("leaveDays")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 2")
	b.AddParagraph(fmt.Sprintf(
		"Годишниот одмор ќе се користи од %s до %s.",
		ctx.Date("leaveStartDate"), ctx.Date("leaveEndDate")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 3")
	b.AddParagraph(
		"За време на годишниот одмор на работникот му припаѓа надоместок на плата во висина на неговата просечна плата.")
	b.AddEmptyLine()
	b.AddEmptyLine()
	signatureBlock(b, ctx.Get("companyName"), ctx.Get("employeeName"))

	content, err := b.ProduceBytes()
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedDocument{
		Filename: Filename("Решение за годишен одмор", ctx.Get("employeeName")),
		Content:  content,
	}, nil
}

func signatureBlock(b *docx.Builder, employer, otherParty string) {
	b.AddParagraph(fmt.Sprintf("За работодавачот: _________________ (%s)", employer))
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf("Договорна страна: _________________ (%s)", otherParty))
}
