package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

// kenyaLocations maps counties served by the club to their constituencies.
var kenyaLocations = map[string][]string{
	"Nairobi":   {"Westlands", "Dagoretti North", "Dagoretti South", "Langata", "Kibra", "Roysambu", "Kasarani", "Ruaraka", "Embakasi", "Makadara", "Kamukunji", "Starehe", "Mathare"},
	"Kiambu":    {"Gatundu South", "Gatundu North", "Juja", "Thika Town", "Ruiru", "Githunguri", "Kiambu", "Kiambaa", "Kabete", "Kikuyu", "Limuru", "Lari"},
	"Murang'a":  {"Kangema", "Mathioya", "Kiharu", "Kigumo", "Maragwa", "Kandara", "Gatanga"},
	"Nyeri":     {"Tetu", "Kieni", "Mathira", "Othaya", "Mukurweini", "Nyeri Town"},
	"Kirinyaga": {"Mwea", "Gichugu", "Ndia", "Kirinyaga Central"},
	"Nyandarua": {"Kinangop", "Kipipiri", "Ol Kalou", "Ol Jorok", "Ndaragwa"},
	"Nakuru":    {"Molo", "Njoro", "Naivasha", "Gilgil", "Kuresoi South", "Kuresoi North", "Subukia", "Rongai", "Bahati", "Nakuru Town West", "Nakuru Town East"},
	"Machakos":  {"Masinga", "Yatta", "Kangundo", "Matungulu", "Kathiani", "Mavoko", "Machakos Town", "Mwala"},
	"Kajiado":   {"Kajiado North", "Kajiado Central", "Kajiado East", "Kajiado West", "Kajiado South"},
	"Mombasa":   {"Changamwe", "Jomvu", "Kisauni", "Nyali", "Likoni", "Mvita"},
}

func ListCounties(c *fiber.Ctx) error {
	counties := make([]string, 0, len(kenyaLocations))
	for county := range kenyaLocations {
		counties = append(counties, county)
	}
	sort.Strings(counties)

	return c.JSON(fiber.Map{"counties": counties})
}

func ListConstituencies(c *fiber.Ctx) error {
	county := c.Query("county")
	constituencies, ok := kenyaLocations[county]
	if county == "" || !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"constituencies": []string{},
			"error":          "County not found",
		})
	}

	return c.JSON(fiber.Map{"constituencies": constituencies})
}
