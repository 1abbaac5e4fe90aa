package utils

import (
	"fmt"
	"log"

	"github.com/lifevault/lifevault-api/config"

	"github.com/go-resty/resty/v2"
)

// SendOTPToMobile delivers a login OTP through the Fast2SMS DLT route.
// The template carries the OTP and its validity in minutes.
func SendOTPToMobile(mobile, otp string) error {
	client := resty.New()

	resp, err := client.R().
		SetQueryParams(map[string]string{
			"authorization":    config.AppConfig.SmsApiKey,
			"route":            "dlt",
			"sender_id":        config.AppConfig.SmsSenderID,
			"message":          "168524",
			"variables_values": fmt.Sprintf("%s|5", otp),
			"flash":            "0",
			"numbers":          mobile,
		}).
		Get("https://www.fast2sms.com/dev/bulkV2")

	if err != nil {
		log.Printf("Error while sending OTP: %v", err)
		return err
	}

	if resp.StatusCode() != 200 {
		log.Printf("Failed to send OTP, response code: %d", resp.StatusCode())
		return fmt.Errorf("failed to send OTP, code: %d", resp.StatusCode())
	}

	log.Println("OTP sent successfully to", mobile)
	return nil
}
