package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	config "github.com/centraladventures/trips_backend/configs"
	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
)

// GenerateBookingReceipt renders a PDF receipt for a paid booking and stores
// the upload URL on the booking row. Skipped entirely when Cloudinary is not
// configured.
func GenerateBookingReceipt(checkoutRequestID string) {
	if config.Config("CLOUDINARY_URL") == "" {
		log.Println("Cloudinary not configured, skipping receipt generation.")
		return
	}

	var booking models.Booking
	err := database.DB.Preload("User").Preload("Trip").
		First(&booking, "checkout_request_id = ?", checkoutRequestID).Error
	if err != nil {
		log.Printf("🔥 Failed to load booking %s for receipt: %v", checkoutRequestID, err)
		return
	}

	if booking.Status != models.BookingStatusPaid || booking.MpesaReceipt == nil {
		log.Printf("Booking %s is not paid, skipping receipt generation.", booking.Reference)
		return
	}

	htmlData, err := generateReceiptHTML(booking)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt to Cloudinary: %v", err)
		return
	}

	err = database.DB.Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]interface{}{"receipt_url": uploadURL}).Error
	if err != nil {
		log.Printf("🔥 Failed to store receipt URL for booking %s: %v", booking.Reference, err)
		return
	}

	log.Printf("✅ Generated and uploaded receipt for booking %s.", booking.Reference)
}

func generateReceiptHTML(booking models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/receipt.html")
	if err != nil {
		return "", err
	}

	data := struct {
		MemberName  string
		TripTitle   string
		Reference   string
		Receipt     string
		Amount      int64
		PhoneNumber string
		PaidAt      string
	}{
		MemberName:  booking.User.FullName,
		TripTitle:   booking.Trip.Title,
		Reference:   booking.Reference,
		Receipt:     *booking.MpesaReceipt,
		Amount:      booking.Amount,
		PhoneNumber: booking.PhoneNumber,
		PaidAt:      booking.UpdatedAt.Format("January 2, 2006 15:04"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(html string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pdfBytes []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBytes, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBytes, nil
}

func uploadToCloudinary(pdfBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", fmt.Errorf("failed to initialize Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(pdfBytes), uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s", reference),
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
