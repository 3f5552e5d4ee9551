package docgen

import (
	"fmt"
	"time"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/docx"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

func renderConfidentialityAgreement(formData map[string]string, profile domain.CompanyProfile, now time.Time) (*domain.GeneratedDocument, error) {
	placeholders := append(companyPlaceholders(),
		Placeholder{Key: "partyName", Label: "Party Name"},
		Placeholder{Key: "partyAddress", Label: "Party Address"},
		Placeholder{Key: "partyEmail", Label: "Party Email"},
		Placeholder{Key: "agreementDate", Label: "Agreement Date"},
		Placeholder{Key: "agreementDuration", Label: "Agreement Duration"},
		Placeholder{Key: "penaltyAmount", Label: "Penalty Amount"},
	)
	ctx := BuildContext(placeholders, formData, profile, now)

	mutual := formData["mutualObligation"] == "true"

	b := docx.NewBuilder()
	b.AddHeading("ДОГОВОР ЗА ДОВЕРЛИВОСТ")
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf(
		"Склучен на %s, помеѓу %s, со седиште на %s, и %s, со адреса %s, е-пошта %s.",
		ctx.Date("agreementDate"), ctx.Get("companyName"), ctx.Get("companyAddress"),
		ctx.Get("partyName"), ctx.Get("partyAddress"), ctx.Get("partyEmail")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 1 — Доверливи информации")
	b.AddParagraph(
		"Како доверливи информации се сметаат сите деловни, технички и финансиски податоци што едната страна ќе ѝ ги направи достапни на другата за време на соработката, без оглед на формата во која се пренесени.")
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 2 — Обврска за чување")
	if mutual {
		b.AddParagraph(
			"Двете договорни страни се обврзуваат доверливите информации да ги користат исклучиво за целите на соработката и да не ги откриваат на трети лица без претходна писмена согласност на другата страна.")
	} else {
		b.AddParagraph(fmt.Sprintf(
			"%s се обврзува доверливите информации да ги користи исклучиво за целите на соработката и да не ги открива на трети лица без претходна писмена согласност.",
			ctx.Get("partyName")))
	}
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 3 — Траење")
	b.AddParagraph(fmt.Sprintf(
		"Обврската за чување на доверливите информации важи %s години по престанокот на соработката.",
		ctx.Get("agreementDuration")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 4 — Договорна казна")
	b.AddParagraph(fmt.Sprintf(
		"За секое прекршување на обврските од овој договор, одговорната страна должи договорна казна во износ од %s денари, без да се исклучи правото на надомест на повисока штета.",
		ctx.Get("penaltyAmount")))
	b.AddEmptyLine()
	b.AddEmptyLine()
	signatureBlock(b, ctx.Get("companyName"), ctx.Get("partyName"))

	content, err := b.ProduceBytes()
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedDocument{
		Filename: Filename("Договор за доверливост", ctx.Get("partyName")),
		Content:  content,
	}, nil
}

func renderBonusPaymentDecision(formData map[string]string, profile domain.CompanyProfile, now time.Time) (*domain.GeneratedDocument, error) {
	placeholders := append(companyPlaceholders(),
		Placeholder{Key: "employeeName", Label: "Employee Name"},
		Placeholder{Key: "position", Label: "Position"},
		Placeholder{Key: "bonusAmount", Label: "Bonus Amount"},
		Placeholder{Key: "paymentDate", Label: "Payment Date"},
		Placeholder{Key: "bonusReason", Label: "Bonus Reason"},
	)
	ctx := BuildContext(placeholders, formData, profile, now)

	b := docx.NewBuilder()
	b.AddHeading("ОДЛУКА ЗА ИСПЛАТА НА БОНУС")
	b.AddEmptyLine()
	b.AddParagraph(fmt.Sprintf(
		"Работодавачот %s, претставуван од управителот %s, на ден %s ја донесува следната одлука:",
		ctx.Get("companyName"), ctx.Get("companyManager"), ctx.Today()))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 1")
	b.AddParagraph(fmt.Sprintf(
		"На работникот %s, на работното место %s, му се одобрува исплата на бонус за работна успешност во нето износ од %s денари.",
		ctx.Get("employeeName"), ctx.Get("position"), ctx.Get("bonusAmount")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 2")
	b.AddParagraph(fmt.Sprintf(
		"Исплатата ќе се изврши на %s, заедно со редовната плата.",
		ctx.Date("paymentDate")))
	b.AddEmptyLine()
	b.AddBoldParagraph("Член 3 — Образложение")
	b.AddParagraph(ctx.Get("bonusReason"))
	b.AddEmptyLine()
	b.AddEmptyLine()
	signatureBlock(b, ctx.Get("companyName"), ctx.Get("employeeName"))

	content, err := b.ProduceBytes()
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedDocument{
		Filename: Filename("Одлука за исплата на бонус", ctx.Get("employeeName")),
		Content:  content,
	}, nil
}
