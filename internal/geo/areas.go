package geo

import "github.com/marketlens/marketlens/internal/models"

// areaCoordinates is the reference table for free-text area names as they
// appear in warehouse rows. Several physical locations carry more than one
// spelling (abbreviations, "Al" prefixes, numbered sub-communities) because
// the upstream data entry is not controlled. Read-only after process start.
var areaCoordinates = map[string]models.Location{
	// Dubai coastal strip
	"Dubai Marina":             {Lat: 25.0772, Lng: 55.1335},
	"Marina":                   {Lat: 25.0772, Lng: 55.1335},
	"Jumeirah Beach Residence": {Lat: 25.0752, Lng: 55.1336},
	"JBR":                      {Lat: 25.0752, Lng: 55.1336},
	"Bluewaters Island":        {Lat: 25.0786, Lng: 55.1220},
	"Palm Jumeirah":            {Lat: 25.1124, Lng: 55.1390},
	"The Palm":                 {Lat: 25.1124, Lng: 55.1390},
	"Jumeirah":                 {Lat: 25.2048, Lng: 55.2550},
	"Jumeirah 1":               {Lat: 25.2233, Lng: 55.2590},
	"Jumeirah 2":               {Lat: 25.2108, Lng: 55.2500},
	"Jumeirah 3":               {Lat: 25.1942, Lng: 55.2385},
	"Umm Suqeim":               {Lat: 25.1560, Lng: 55.2100},
	"Umm Suqeim 1":             {Lat: 25.1700, Lng: 55.2200},
	"Umm Suqeim 2":             {Lat: 25.1560, Lng: 55.2100},
	"Umm Suqeim 3":             {Lat: 25.1430, Lng: 55.1950},
	"La Mer":                   {Lat: 25.2280, Lng: 55.2578},
	"Pearl Jumeirah":           {Lat: 25.2430, Lng: 55.2720},

	// Downtown and Business Bay
	"Downtown Dubai":     {Lat: 25.1972, Lng: 55.2744},
	"Downtown":           {Lat: 25.1972, Lng: 55.2744},
	"Burj Khalifa":       {Lat: 25.1972, Lng: 55.2744},
	"Business Bay":       {Lat: 25.1850, Lng: 55.2650},
	"DIFC":               {Lat: 25.2110, Lng: 55.2800},
	"Financial Centre":   {Lat: 25.2110, Lng: 55.2800},
	"Trade Centre":       {Lat: 25.2252, Lng: 55.2874},
	"World Trade Centre": {Lat: 25.2252, Lng: 55.2874},
	"Zabeel":             {Lat: 25.2190, Lng: 55.3030},
	"Za'abeel":           {Lat: 25.2190, Lng: 55.3030},
	"City Walk":          {Lat: 25.2050, Lng: 55.2630},
	"Al Wasl":            {Lat: 25.1990, Lng: 55.2530},

	// Old Dubai
	"Deira":           {Lat: 25.2697, Lng: 55.3094},
	"Bur Dubai":       {Lat: 25.2582, Lng: 55.2940},
	"Al Karama":       {Lat: 25.2480, Lng: 55.3060},
	"Karama":          {Lat: 25.2480, Lng: 55.3060},
	"Al Fahidi":       {Lat: 25.2637, Lng: 55.2972},
	"Al Rigga":        {Lat: 25.2665, Lng: 55.3215},
	"Al Muraqqabat":   {Lat: 25.2680, Lng: 55.3270},
	"Al Baraha":       {Lat: 25.2810, Lng: 55.3200},
	"Al Murar":        {Lat: 25.2780, Lng: 55.3130},
	"Naif":            {Lat: 25.2730, Lng: 55.3090},
	"Al Ras":          {Lat: 25.2680, Lng: 55.2950},
	"Al Sabkha":       {Lat: 25.2690, Lng: 55.3010},
	"Al Daghaya":      {Lat: 25.2700, Lng: 55.3050},
	"Abu Hail":        {Lat: 25.2850, Lng: 55.3330},
	"Hor Al Anz":      {Lat: 25.2780, Lng: 55.3370},
	"Al Hamriya":      {Lat: 25.2610, Lng: 55.3030},
	"Al Mankhool":     {Lat: 25.2520, Lng: 55.2900},
	"Mankhool":        {Lat: 25.2520, Lng: 55.2900},
	"Al Raffa":        {Lat: 25.2570, Lng: 55.2890},
	"Meena Bazaar":    {Lat: 25.2620, Lng: 55.2930},
	"Al Jaddaf":       {Lat: 25.2170, Lng: 55.3320},
	"Jaddaf":          {Lat: 25.2170, Lng: 55.3320},
	"Dubai Creek":     {Lat: 25.2440, Lng: 55.3250},
	"Creek Harbour":   {Lat: 25.2030, Lng: 55.3480},
	"Al Garhoud":      {Lat: 25.2460, Lng: 55.3460},
	"Garhoud":         {Lat: 25.2460, Lng: 55.3460},
	"Port Saeed":      {Lat: 25.2550, Lng: 55.3320},
	"Al Qusais":       {Lat: 25.2800, Lng: 55.3750},
	"Qusais":          {Lat: 25.2800, Lng: 55.3750},
	"Al Nahda":        {Lat: 25.2900, Lng: 55.3700},
	"Al Twar":         {Lat: 25.2660, Lng: 55.3800},
	"Muhaisnah":       {Lat: 25.2720, Lng: 55.4070},
	"Al Mizhar":       {Lat: 25.2430, Lng: 55.4360},
	"Mirdif":          {Lat: 25.2190, Lng: 55.4210},
	"Mirdiff":         {Lat: 25.2190, Lng: 55.4210},
	"Al Warqa":        {Lat: 25.2030, Lng: 55.4090},
	"Al Warqaa":       {Lat: 25.2030, Lng: 55.4090},
	"Al Rashidiya":    {Lat: 25.2300, Lng: 55.3890},
	"Rashidiya":       {Lat: 25.2300, Lng: 55.3890},
	"Festival City":   {Lat: 25.2220, Lng: 55.3520},
	"Nad Al Hamar":    {Lat: 25.1960, Lng: 55.3760},
	"Ras Al Khor":     {Lat: 25.1720, Lng: 55.3480},
	"Oud Metha":       {Lat: 25.2430, Lng: 55.3130},
	"Umm Hurair":      {Lat: 25.2440, Lng: 55.3100},
	"Healthcare City": {Lat: 25.2310, Lng: 55.3230},
	"Al Satwa":        {Lat: 25.2240, Lng: 55.2700},
	"Satwa":           {Lat: 25.2240, Lng: 55.2700},

	// New Dubai inland
	"Al Barsha":              {Lat: 25.1139, Lng: 55.1970},
	"Al Barsha 1":            {Lat: 25.1139, Lng: 55.1970},
	"Barsha":                 {Lat: 25.1139, Lng: 55.1970},
	"Barsha Heights":         {Lat: 25.0980, Lng: 55.1740},
	"Tecom":                  {Lat: 25.0980, Lng: 55.1740},
	"Al Barsha South":        {Lat: 25.0830, Lng: 55.2050},
	"Al Quoz":                {Lat: 25.1440, Lng: 55.2370},
	"Al Quoz Industrial":     {Lat: 25.1280, Lng: 55.2280},
	"Jumeirah Lake Towers":   {Lat: 25.0700, Lng: 55.1420},
	"JLT":                    {Lat: 25.0700, Lng: 55.1420},
	"Jumeirah Islands":       {Lat: 25.0540, Lng: 55.1540},
	"Jumeirah Park":          {Lat: 25.0470, Lng: 55.1660},
	"The Meadows":            {Lat: 25.0630, Lng: 55.1680},
	"The Springs":            {Lat: 25.0590, Lng: 55.1800},
	"The Lakes":              {Lat: 25.0760, Lng: 55.1700},
	"Emirates Hills":         {Lat: 25.0680, Lng: 55.1620},
	"The Greens":             {Lat: 25.0930, Lng: 55.1720},
	"The Views":              {Lat: 25.0900, Lng: 55.1680},
	"Dubai Media City":       {Lat: 25.0950, Lng: 55.1560},
	"Media City":             {Lat: 25.0950, Lng: 55.1560},
	"Dubai Internet City":    {Lat: 25.1000, Lng: 55.1640},
	"Internet City":          {Lat: 25.1000, Lng: 55.1640},
	"Knowledge Village":      {Lat: 25.1030, Lng: 55.1590},
	"Al Sufouh":              {Lat: 25.1170, Lng: 55.1700},
	"Sufouh":                 {Lat: 25.1170, Lng: 55.1700},
	"Jumeirah Village Circle": {Lat: 25.0600, Lng: 55.2080},
	"JVC":                    {Lat: 25.0600, Lng: 55.2080},
	"Jumeirah Village Triangle": {Lat: 25.0480, Lng: 55.1880},
	"JVT":                    {Lat: 25.0480, Lng: 55.1880},
	"Dubai Sports City":      {Lat: 25.0390, Lng: 55.2190},
	"Sports City":            {Lat: 25.0390, Lng: 55.2190},
	"Motor City":             {Lat: 25.0460, Lng: 55.2390},
	"Dubai Production City":  {Lat: 25.0330, Lng: 55.1920},
	"IMPZ":                   {Lat: 25.0330, Lng: 55.1920},
	"Dubai Studio City":      {Lat: 25.0370, Lng: 55.2540},
	"Arjan":                  {Lat: 25.0620, Lng: 55.2440},
	"Dubailand":              {Lat: 25.0560, Lng: 55.2880},
	"Arabian Ranches":        {Lat: 25.0420, Lng: 55.2690},
	"Mudon":                  {Lat: 25.0280, Lng: 55.2770},
	"Damac Hills":            {Lat: 25.0230, Lng: 55.2490},
	"Town Square":            {Lat: 25.0040, Lng: 55.2730},
	"The Villa":              {Lat: 25.0680, Lng: 55.3210},
	"Silicon Oasis":          {Lat: 25.1210, Lng: 55.3780},
	"Dubai Silicon Oasis":    {Lat: 25.1210, Lng: 55.3780},
	"DSO":                    {Lat: 25.1210, Lng: 55.3780},
	"Academic City":          {Lat: 25.1150, Lng: 55.4110},
	"International City":     {Lat: 25.1650, Lng: 55.4060},
	"Dragon Mart":            {Lat: 25.1710, Lng: 55.4180},
	"Al Barari":              {Lat: 25.0960, Lng: 55.3280},
	"Majan":                  {Lat: 25.0880, Lng: 55.3160},
	"Liwan":                  {Lat: 25.0930, Lng: 55.3580},
	"Remraam":                {Lat: 25.0070, Lng: 55.2520},
	"Al Furjan":              {Lat: 25.0270, Lng: 55.1440},
	"Discovery Gardens":      {Lat: 25.0380, Lng: 55.1380},
	"The Gardens":            {Lat: 25.0460, Lng: 55.1290},
	"Jebel Ali":              {Lat: 25.0110, Lng: 55.0780},
	"Jebel Ali Village":      {Lat: 25.0410, Lng: 55.1180},
	"Dubai Investment Park":  {Lat: 24.9860, Lng: 55.1750},
	"DIP":                    {Lat: 24.9860, Lng: 55.1750},
	"Dubai South":            {Lat: 24.8890, Lng: 55.1540},
	"Expo City":              {Lat: 24.9610, Lng: 55.1510},
	"Meydan":                 {Lat: 25.1560, Lng: 55.3020},
	"Nad Al Sheba":           {Lat: 25.1490, Lng: 55.3270},
	"Al Khawaneej":           {Lat: 25.2440, Lng: 55.4660},
	"Khawaneej":              {Lat: 25.2440, Lng: 55.4660},
	"Al Awir":                {Lat: 25.1780, Lng: 55.4970},

	// Sharjah
	"Al Majaz":        {Lat: 25.3230, Lng: 55.3840},
	"Al Nahda Sharjah": {Lat: 25.3010, Lng: 55.3770},
	"Al Khan":         {Lat: 25.3210, Lng: 55.3720},
	"Al Taawun":       {Lat: 25.3120, Lng: 55.3750},
	"Al Qasimia":      {Lat: 25.3390, Lng: 55.3940},
	"Muwaileh":        {Lat: 25.3050, Lng: 55.4470},
	"Al Wahda Sharjah": {Lat: 25.3290, Lng: 55.4040},

	// Abu Dhabi
	"Al Reem Island":   {Lat: 24.4930, Lng: 54.4080},
	"Reem Island":      {Lat: 24.4930, Lng: 54.4080},
	"Al Khalidiya":     {Lat: 24.4680, Lng: 54.3420},
	"Khalidiya":        {Lat: 24.4680, Lng: 54.3420},
	"Corniche":         {Lat: 24.4760, Lng: 54.3350},
	"Al Zahiyah":       {Lat: 24.4950, Lng: 54.3730},
	"Tourist Club":     {Lat: 24.4950, Lng: 54.3730},
	"Khalifa City":     {Lat: 24.4240, Lng: 54.5720},
	"Al Raha":          {Lat: 24.4560, Lng: 54.6070},
	"Yas Island":       {Lat: 24.4880, Lng: 54.6080},
	"Saadiyat Island":  {Lat: 24.5390, Lng: 54.4340},
	"Mussafah":         {Lat: 24.3590, Lng: 54.4900},
	"Al Wahda":         {Lat: 24.4700, Lng: 54.3730},
	"Madinat Zayed":    {Lat: 24.4820, Lng: 54.3610},
	"Al Ain Town Centre": {Lat: 24.2075, Lng: 55.7447},
}
