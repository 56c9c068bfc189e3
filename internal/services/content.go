package services

import (
	"context"
	"errors"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"restfulmind/internal/apperrors"
	"restfulmind/internal/logger"
	"restfulmind/internal/models"
	"restfulmind/internal/repository"
)

type StaticContentService struct {
	repo repository.StaticContentRepo
}

func NewStaticContentService(repo repository.StaticContentRepo) *StaticContentService {
	return &StaticContentService{repo: repo}
}

// GetPage отдаёт сохранённое переопределение страницы; при его отсутствии —
// встроенный текст по умолчанию (privacy/terms/disclaimer), для неизвестных
// типов — пустую заглушку.
func (s *StaticContentService) GetPage(ctx context.Context, pageType string) (*models.StaticContent, error) {
	log := logger.WithCtx(ctx)

	c, err := s.repo.GetByType(ctx, pageType)
	if err == nil {
		log.Debug("Статическая страница из БД", zap.String("type", pageType))
		return c, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Error("Ошибка получения статической страницы (repo)", zap.String("type", pageType), zap.Error(err))
		return nil, err
	}

	log.Debug("Статическая страница по умолчанию", zap.String("type", pageType))
	return defaultPage(pageType), nil
}

// UpsertPage сохраняет переопределение: последующие GetPage отдают его
// вместо встроенного текста.
func (s *StaticContentService) UpsertPage(ctx context.Context, pageType string, req *models.StaticContentRequest) (*models.StaticContent, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сохранение статической страницы", zap.String("type", pageType))

	c := &models.StaticContent{
		ID:      uuid.NewString(),
		Type:    pageType,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.repo.Upsert(ctx, c); err != nil {
		log.Error("Ошибка сохранения статической страницы (repo)", zap.String("type", pageType), zap.Error(err))
		return nil, err
	}

	saved, err := s.repo.GetByType(ctx, pageType)
	if err != nil {
		log.Error("Ошибка чтения страницы после сохранения (repo)", zap.String("type", pageType), zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func defaultPage(pageType string) *models.StaticContent {
	switch pageType {
	case "privacy":
		return &models.StaticContent{Type: "privacy", Title: "Privacy Policy", Content: defaultPrivacyPolicy}
	case "terms":
		return &models.StaticContent{Type: "terms", Title: "Terms of Service", Content: defaultTerms}
	case "disclaimer":
		return &models.StaticContent{Type: "disclaimer", Title: "Disclaimer", Content: defaultDisclaimer}
	}
	return &models.StaticContent{Type: pageType, Title: titleCase(pageType), Content: ""}
}

// titleCase поднимает первую букву каждого слова: "about-us" -> "About-Us".
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(out)
}

const defaultPrivacyPolicy = `
## Introduction
RestfulMind ("we," "our," or "us") respects your privacy and is committed to protecting your personal data. This privacy policy explains how we collect, use, and safeguard your information when you visit our website.

## Information We Collect
- **Email Address**: When you subscribe to our newsletter
- **Usage Data**: Pages visited, time spent, and general browsing patterns
- **Device Information**: Browser type, operating system, and device identifiers

## How We Use Your Information
- To send you our weekly newsletter (with your consent)
- To improve our website content and user experience
- To analyze website traffic and trends

## Your Rights (GDPR)
Under the General Data Protection Regulation (GDPR), you have the right to:
- Access your personal data
- Rectify inaccurate data
- Request deletion of your data
- Withdraw consent at any time
- Lodge a complaint with a supervisory authority

## Newsletter & Email
By subscribing to our newsletter, you consent to receive weekly emails about sleep, mental health, and productivity. You can unsubscribe at any time by clicking the unsubscribe link in any email.

## Cookies
We use cookies to enhance your browsing experience. These include:
- Essential cookies for site functionality
- Analytics cookies to understand site usage

## Data Retention
We retain your email address until you unsubscribe. Usage data is retained for 26 months.

## Contact Us
For privacy-related inquiries, please contact us through our Contact page.

*Last updated: December 2025*
`

const defaultTerms = `
## Acceptance of Terms
By accessing RestfulMind, you agree to be bound by these Terms of Service.

## Use of Content
- All content is for informational purposes only
- You may share our content with attribution
- Commercial use requires written permission

## User Conduct
You agree not to:
- Misuse the website or its content
- Attempt to gain unauthorized access
- Use automated systems to access the site

## Intellectual Property
All content, including articles, images, and design, is owned by RestfulMind and protected by copyright laws.

## Disclaimer
The information provided is for general informational purposes only. We are not medical professionals and our content does not constitute medical advice.

## Limitation of Liability
RestfulMind shall not be liable for any indirect, incidental, or consequential damages arising from your use of the website.

## Changes to Terms
We reserve the right to modify these terms at any time. Continued use of the site constitutes acceptance of updated terms.

## Governing Law
These terms are governed by applicable laws and regulations.

*Last updated: December 2025*
`

const defaultDisclaimer = `
## Medical Disclaimer
**RestfulMind provides general information about sleep, mental health, and productivity for educational purposes only.**

## Not Medical Advice
The content on this website:
- Is NOT intended as a substitute for professional medical advice
- Should NOT be used for diagnosing or treating health problems
- Does NOT create a doctor-patient relationship

## Consult a Professional
Always seek the advice of your physician or other qualified health provider with any questions you may have regarding a medical condition. Never disregard professional medical advice or delay in seeking it because of something you have read on this website.

## No Guarantees
While we strive to provide accurate and up-to-date information:
- We make no guarantees about the completeness or accuracy of the content
- Results from following suggestions may vary
- Individual circumstances differ

## Emergency Situations
If you think you may have a medical emergency, call your doctor or emergency services immediately.

## External Links
Links to external websites are provided for convenience. We are not responsible for the content of external sites.

*This disclaimer applies to all content on RestfulMind.*
`
