package content

// englishMatches is the English vocabulary curriculum for the matching
// game. Targets are French translations, image paths or color codes,
// exactly as the board renders them.
var englishMatches = map[string][]Match{
	"rooms": {
		{Word: "Kitchen", Target: "Cuisine"},
		{Word: "Living room", Target: "Salon"},
		{Word: "Bedroom", Target: "Chambre"},
		{Word: "Bathroom", Target: "Salle de bain"},
		{Word: "Garden", Target: "Jardin"},
		{Word: "Garage", Target: "Garage"},
		{Word: "Office", Target: "Bureau"},
		{Word: "Dining room", Target: "Salle à manger"},
		{Word: "Toilet", Target: "Toilettes"},
	},
	"days": {
		{Word: "Monday", Target: "Lundi"},
		{Word: "Tuesday", Target: "Mardi"},
		{Word: "Wednesday", Target: "Mercredi"},
		{Word: "Thursday", Target: "Jeudi"},
		{Word: "Friday", Target: "Vendredi"},
		{Word: "Saturday", Target: "Samedi"},
		{Word: "Sunday", Target: "Dimanche"},
	},
	"family": {
		{Word: "Father", Target: "Père"},
		{Word: "Mother", Target: "Mère"},
		{Word: "Brother", Target: "Frère"},
		{Word: "Sister", Target: "Soeur"},
		{Word: "Grandfather", Target: "Grand-père"},
		{Word: "Grandmother", Target: "Grand-mère"},
		{Word: "Uncle", Target: "Oncle"},
		{Word: "Aunt", Target: "Tante"},
		{Word: "Cousin", Target: "Cousin"},
	},
	"weather": {
		{Word: "Sun", Target: "/img/english/sun.png"},
		{Word: "Rain", Target: "/img/english/rain.png"},
		{Word: "Cloud", Target: "/img/english/cloud.png"},
		{Word: "Snow", Target: "/img/english/snow.png"},
		{Word: "Wind", Target: "/img/english/wind.gif"},
		{Word: "Storm", Target: "/img/english/storm.png"},
		{Word: "Fog", Target: "/img/english/fog.png"},
		{Word: "Rainbow", Target: "/img/english/rainbow.png"},
	},
	"fruits": {
		{Word: "Apple", Target: "/img/english/apple.png"},
		{Word: "Banana", Target: "/img/english/banana.png"},
		{Word: "Orange", Target: "/img/english/orange.png"},
		{Word: "Pear", Target: "/img/english/pear.png"},
		{Word: "Lemon", Target: "/img/english/lemon.png"},
		{Word: "Grape", Target: "/img/english/grape.png"},
		{Word: "Cherry", Target: "/img/english/cherry.png"},
		{Word: "Strawberry", Target: "/img/english/strawberry.png"},
		{Word: "Pineapple", Target: "/img/english/pineapple.png"},
		{Word: "Melon", Target: "/img/english/melon.png"},
	},
	"animals": {
		{Word: "Dog", Target: "/img/english/dog.png"},
		{Word: "Cat", Target: "/img/english/cat.png"},
		{Word: "Fish", Target: "/img/english/fish.png"},
		{Word: "Rabbit", Target: "/img/english/rabbit.png"},
		{Word: "Mouse", Target: "/img/english/mouse.png"},
		{Word: "Bird", Target: "/img/english/bird.png"},
		{Word: "Elephant", Target: "/img/english/elephant.png"},
		{Word: "Tiger", Target: "/img/english/tiger.png"},
		{Word: "Lion", Target: "/img/english/lion.png"},
		{Word: "Monkey", Target: "/img/english/monkey.png"},
	},
	"numbers": {
		{Word: "One", Target: "1"},
		{Word: "Two", Target: "2"},
		{Word: "Three", Target: "3"},
		{Word: "Four", Target: "4"},
		{Word: "Five", Target: "5"},
		{Word: "Six", Target: "6"},
		{Word: "Seven", Target: "7"},
		{Word: "Eight", Target: "8"},
		{Word: "Nine", Target: "9"},
		{Word: "Ten", Target: "10"},
	},
	"colours": {
		{Word: "Red", Target: "#FF0000"},
		{Word: "Green", Target: "#00FF00"},
		{Word: "Blue", Target: "#0000FF"},
		{Word: "Yellow", Target: "#FFFF00"},
		{Word: "Purple", Target: "#800080"},
		{Word: "Orange", Target: "#FFA500"},
		{Word: "Pink", Target: "#FFC0CB"},
		{Word: "Brown", Target: "#A52A2A"},
		{Word: "Black", Target: "#000000"},
		{Word: "White", Target: "#FFFFFF"},
	},
}
