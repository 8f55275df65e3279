package domain

// SeedProducts returns the built-in laptop catalog. The slice is rebuilt on
// every call so callers can never mutate the seed data.
func SeedProducts() []*Product {
	return []*Product{
		{
			ID:            "1",
			Name:          "Gaming Beast Pro",
			Brand:         "ASUS",
			Model:         "ROG Strix G16",
			Price:         89999,
			OriginalPrice: 99999,
			Image:         "/images/gaming-beast-pro.jpg",
			Rating:        4.8,
			ReviewCount:   124,
			Category:      "gaming",
			Availability:  []string{"Zamboanga", "Davao", "CDO"},
			Specs: Specs{
				Processor:    SpecGroup{"brand": "Intel", "model": "Core i9-13980HX", "cores": "24", "baseSpeed": "2.2 GHz", "maxSpeed": "5.6 GHz", "cache": "36 MB"},
				Graphics:     SpecGroup{"gpu": "RTX 4070", "vram": "8 GB", "rayTracing": "Yes", "dlss": "DLSS 3"},
				Memory:       SpecGroup{"ram": "16 GB", "maxRam": "64 GB", "slots": "2"},
				Storage:      SpecGroup{"primary": "1 TB NVMe SSD", "slots": "2", "expandable": "Yes"},
				Display:      SpecGroup{"size": "16 in", "resolution": "2560x1600", "refreshRate": "240 Hz", "panel": "IPS", "colorGamut": "100% DCI-P3", "brightness": "500 nits"},
				Connectivity: SpecGroup{"wifi": "Wi-Fi 6E", "bluetooth": "5.3", "ethernet": "2.5 GbE", "usb": "2x USB-C, 2x USB-A", "hdmi": "HDMI 2.1", "audio": "3.5mm combo"},
				Physical:     SpecGroup{"dimensions": "354 x 264 x 22.6 mm", "weight": "2.5 kg", "battery": "90 Wh", "adapter": "280 W", "keyboard": "RGB per-key", "trackpad": "Glass"},
			},
			Features:    []string{"RGB Keyboard", "144Hz Display", "Ray Tracing", "DLSS", "Wi-Fi 6"},
			KeyFeatures: []string{"RTX 4070 graphics", "240Hz QHD+ display", "Advanced cooling"},
		},
		{
			ID:            "2",
			Name:          "Business Elite",
			Brand:         "Lenovo",
			Model:         "ThinkPad X1 Carbon",
			Price:         65999,
			OriginalPrice: 69999,
			Image:         "/images/business-elite.jpg",
			Rating:        4.6,
			ReviewCount:   89,
			Category:      "work",
			Availability:  []string{"Davao", "CDO", "Butuan"},
			Specs: Specs{
				Processor:    SpecGroup{"brand": "Intel", "model": "Core i7-1365U", "cores": "10", "baseSpeed": "1.8 GHz", "maxSpeed": "5.2 GHz", "cache": "12 MB"},
				Graphics:     SpecGroup{"gpu": "Iris Xe", "vram": "Shared", "rayTracing": "No", "dlss": "No"},
				Memory:       SpecGroup{"ram": "16 GB", "maxRam": "32 GB", "slots": "Soldered"},
				Storage:      SpecGroup{"primary": "512 GB NVMe SSD", "slots": "1", "expandable": "No"},
				Display:      SpecGroup{"size": "14 in", "resolution": "1920x1200", "refreshRate": "60 Hz", "panel": "IPS", "colorGamut": "100% sRGB", "brightness": "400 nits"},
				Connectivity: SpecGroup{"wifi": "Wi-Fi 6E", "bluetooth": "5.1", "ethernet": "None", "usb": "2x USB-C, 2x USB-A", "hdmi": "HDMI 2.0", "audio": "3.5mm combo"},
				Physical:     SpecGroup{"dimensions": "315 x 222 x 15.4 mm", "weight": "1.1 kg", "battery": "57 Wh", "adapter": "65 W", "keyboard": "Backlit", "trackpad": "Mylar"},
			},
			Features:    []string{"Fingerprint Scanner", "Backlit Keyboard", "Long Battery Life", "Lightweight"},
			KeyFeatures: []string{"1.1 kg carbon chassis", "All-day battery", "MIL-SPEC durability"},
		},
		{
			ID:            "3",
			Name:          "Student Essential",
			Brand:         "Acer",
			Model:         "Aspire 5",
			Price:         35999,
			OriginalPrice: 39999,
			Image:         "/images/student-essential.jpg",
			Rating:        4.4,
			ReviewCount:   156,
			Category:      "student",
			Availability:  []string{"Zamboanga", "Davao", "CDO", "Butuan"},
			Specs: Specs{
				Processor:    SpecGroup{"brand": "Intel", "model": "Core i5-1235U", "cores": "10", "baseSpeed": "1.3 GHz", "maxSpeed": "4.4 GHz", "cache": "12 MB"},
				Graphics:     SpecGroup{"gpu": "Iris Xe", "vram": "Shared", "rayTracing": "No", "dlss": "No"},
				Memory:       SpecGroup{"ram": "8 GB", "maxRam": "32 GB", "slots": "2"},
				Storage:      SpecGroup{"primary": "256 GB NVMe SSD", "slots": "2", "expandable": "Yes"},
				Display:      SpecGroup{"size": "15.6 in", "resolution": "1920x1080", "refreshRate": "60 Hz", "panel": "IPS", "colorGamut": "62% sRGB", "brightness": "300 nits"},
				Connectivity: SpecGroup{"wifi": "Wi-Fi 6", "bluetooth": "5.1", "ethernet": "1 GbE", "usb": "1x USB-C, 3x USB-A", "hdmi": "HDMI 2.1", "audio": "3.5mm combo"},
				Physical:     SpecGroup{"dimensions": "363 x 237 x 17.9 mm", "weight": "1.8 kg", "battery": "50 Wh", "adapter": "65 W", "keyboard": "Backlit", "trackpad": "Plastic"},
			},
			Features:    []string{"Lightweight", "Long Battery Life", "Fast Charging", "Webcam"},
			KeyFeatures: []string{"Balanced everyday performance", "Upgradeable memory", "Full port selection"},
		},
		{
			ID:            "4",
			Name:          "Budget Champion",
			Brand:         "HP",
			Model:         "Pavilion 15",
			Price:         25999,
			OriginalPrice: 28999,
			Image:         "/images/budget-champion.jpg",
			Rating:        4.2,
			ReviewCount:   203,
			Category:      "budget",
			Availability:  []string{"Zamboanga", "Davao"},
			Specs: Specs{
				Processor:    SpecGroup{"brand": "AMD", "model": "Ryzen 5 7530U", "cores": "6", "baseSpeed": "2.0 GHz", "maxSpeed": "4.5 GHz", "cache": "16 MB"},
				Graphics:     SpecGroup{"gpu": "Radeon Graphics", "vram": "Shared", "rayTracing": "No", "dlss": "No"},
				Memory:       SpecGroup{"ram": "8 GB", "maxRam": "16 GB", "slots": "2"},
				Storage:      SpecGroup{"primary": "256 GB NVMe SSD", "slots": "1", "expandable": "No"},
				Display:      SpecGroup{"size": "15.6 in", "resolution": "1920x1080", "refreshRate": "60 Hz", "panel": "IPS", "colorGamut": "45% NTSC", "brightness": "250 nits"},
				Connectivity: SpecGroup{"wifi": "Wi-Fi 6", "bluetooth": "5.2", "ethernet": "None", "usb": "1x USB-C, 2x USB-A", "hdmi": "HDMI 2.1", "audio": "3.5mm combo"},
				Physical:     SpecGroup{"dimensions": "360 x 234 x 17.9 mm", "weight": "1.7 kg", "battery": "41 Wh", "adapter": "45 W", "keyboard": "Full-size", "trackpad": "Plastic"},
			},
			Features:    []string{"Fast Boot", "Webcam", "Wi-Fi 6", "USB-C"},
			KeyFeatures: []string{"Best value in class", "Quiet operation", "Compact charger"},
		},
		{
			ID:            "5",
			Name:          "Creative Pro",
			Brand:         "Dell",
			Model:         "XPS 15",
			Price:         75999,
			OriginalPrice: 82999,
			Image:         "/images/creative-pro.jpg",
			Rating:        4.7,
			ReviewCount:   67,
			Category:      "work",
			Availability:  []string{"Davao", "CDO"},
			Specs: Specs{
				Processor:    SpecGroup{"brand": "Intel", "model": "Core i7-13700H", "cores": "14", "baseSpeed": "2.4 GHz", "maxSpeed": "5.0 GHz", "cache": "24 MB"},
				Graphics:     SpecGroup{"gpu": "RTX 4050", "vram": "6 GB", "rayTracing": "Yes", "dlss": "DLSS 3"},
				Memory:       SpecGroup{"ram": "32 GB", "maxRam": "64 GB", "slots": "2"},
				Storage:      SpecGroup{"primary": "1 TB NVMe SSD", "slots": "2", "expandable": "Yes"},
				Display:      SpecGroup{"size": "15.6 in", "resolution": "3840x2400", "refreshRate": "60 Hz", "panel": "OLED", "colorGamut": "100% DCI-P3", "brightness": "400 nits"},
				Connectivity: SpecGroup{"wifi": "Wi-Fi 6", "bluetooth": "5.2", "ethernet": "None", "usb": "3x USB-C", "hdmi": "None", "audio": "3.5mm combo"},
				Physical:     SpecGroup{"dimensions": "344 x 230 x 18 mm", "weight": "1.9 kg", "battery": "86 Wh", "adapter": "130 W", "keyboard": "Backlit", "trackpad": "Glass"},
			},
			Features:    []string{"4K Display", "Color Accurate", "Stylus Support", "Thunderbolt"},
			KeyFeatures: []string{"4K OLED panel", "32 GB memory", "Thunderbolt 4"},
		},
		{
			ID:            "6",
			Name:          "Gaming Starter",
			Brand:         "MSI",
			Model:         "GF63 Thin",
			Price:         55999,
			OriginalPrice: 59999,
			Image:         "/images/gaming-starter.jpg",
			Rating:        4.3,
			ReviewCount:   98,
			Category:      "gaming",
			Availability:  []string{"Zamboanga", "CDO", "Butuan"},
			Specs: Specs{
				Processor:    SpecGroup{"brand": "Intel", "model": "Core i5-12450H", "cores": "8", "baseSpeed": "2.0 GHz", "maxSpeed": "4.4 GHz", "cache": "12 MB"},
				Graphics:     SpecGroup{"gpu": "GTX 1660 Ti", "vram": "6 GB", "rayTracing": "No", "dlss": "No"},
				Memory:       SpecGroup{"ram": "16 GB", "maxRam": "64 GB", "slots": "2"},
				Storage:      SpecGroup{"primary": "512 GB NVMe SSD", "slots": "2", "expandable": "Yes"},
				Display:      SpecGroup{"size": "15.6 in", "resolution": "1920x1080", "refreshRate": "120 Hz", "panel": "IPS", "colorGamut": "72% NTSC", "brightness": "250 nits"},
				Connectivity: SpecGroup{"wifi": "Wi-Fi 6", "bluetooth": "5.2", "ethernet": "1 GbE", "usb": "1x USB-C, 3x USB-A", "hdmi": "HDMI 2.0", "audio": "3.5mm combo"},
				Physical:     SpecGroup{"dimensions": "359 x 254 x 21.7 mm", "weight": "1.9 kg", "battery": "52 Wh", "adapter": "120 W", "keyboard": "RGB", "trackpad": "Plastic"},
			},
			Features:    []string{"RGB Keyboard", "120Hz Display", "Gaming Mode", "Cooling System"},
			KeyFeatures: []string{"Entry gaming performance", "120Hz display", "Dual-fan cooling"},
		},
	}
}
