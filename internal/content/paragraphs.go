// Package content supplies the reference text for typing sessions: a
// built-in paragraph catalog, challenge snippets keyed by challenge type,
// user-imported custom texts, and generated paragraphs.
package content

// builtinParagraphs is the stock practice catalog. Entries are plain
// ASCII prose so they can be typed on any keyboard layout.
var builtinParagraphs = []string{
	"The sound of waves crashing on the shore creates a soothing melody. Seagulls glide above the water, searching for food. The salty breeze refreshes the mind, and the golden sand warms the feet. Children build sandcastles while surfers ride the rolling waves with skill.",
	"A quiet forest path winds through towering trees. Sunlight filters through the leaves, creating a beautiful dance of shadows. Birds sing their cheerful songs, and the scent of pine fills the air. Every step on the soft ground feels like an adventure waiting to unfold.",
	"Standing atop a mountain peak, the world stretches out endlessly. Valleys and rivers weave through the landscape like an artist's masterpiece. The air is crisp and pure, filling the lungs with energy. Each step on the rocky trail brings a sense of accomplishment and wonder.",
	"The city is a whirlwind of energy with its flashing lights and honking cars. Skyscrapers touch the clouds while people rush to their destinations. Street performers entertain crowds, and food stalls offer delicious scents. Despite the hustle, every corner holds a story waiting to be discovered.",
	"The vast ocean holds mysteries beneath its surface. Schools of fish glide through coral reefs while dolphins leap joyfully. The waves whisper ancient secrets, carrying them to the shore. Every drop of water connects creatures big and small in a delicate balance of life.",
	"Technology connects us to people across the world in an instant. Messages travel at the speed of light, bringing distant voices closer. While screens bring knowledge and entertainment, real-life conversations remain irreplaceable. Balance is key to making the most of modern inventions.",
	"Taking care of the planet is a shared responsibility. Planting trees, reducing waste, and saving energy all contribute to a better future. Even small actions can create a ripple effect, leading to a cleaner and greener world. Together, we can protect our home.",
	"Artificial intelligence is changing the world in fascinating ways. It helps doctors diagnose illnesses, assists in predicting the weather, and even composes music. However, it is important to use AI responsibly to ensure it benefits everyone. Technology must always be guided by ethical values.",
	"The human brain is a powerhouse of creativity and intelligence. It allows us to solve problems, dream about the future, and feel emotions. Every new experience shapes the mind, helping it grow stronger. Learning never stops, and curiosity fuels endless possibilities.",
	"Climate change is reshaping the planet in unexpected ways. Ice caps are melting, temperatures are rising, and storms are becoming more intense. Sustainable choices, like using renewable energy and reducing pollution, can help slow down these changes. Every effort matters for a brighter future.",
	"A garden is a sanctuary filled with vibrant colors and life. Butterflies dance among the flowers, and bees buzz from bloom to bloom. Growing your own fruits and vegetables brings joy and nourishment. Nature's beauty flourishes when given care and attention.",
	"Rivers carve paths through the land, bringing life wherever they flow. Fishermen cast their nets, hoping for a good catch. Birds skim the surface, searching for food. Keeping rivers clean is crucial for the survival of countless species that depend on their waters.",
	"After a rainstorm, a rainbow paints the sky with its brilliant hues. Each color blends into the next, creating a breathtaking sight. People stop to admire the natural wonder, smiling as they make silent wishes. It is a reminder that beauty often follows the storm.",
	"Books are doors to different worlds, filled with adventure and knowledge. A single page can transport a reader to the depths of the ocean or the farthest stars. Stories spark imagination and inspire new ideas. Reading is a journey that never truly ends.",
	"Playing sports builds strength, teamwork, and determination. Running across the field, dribbling a ball, or swimming through cool water all bring excitement. Victory feels rewarding, but the real joy comes from participation. Sports bring people together, fostering friendships and fun.",
	"Clouds drift lazily across the sky, forming shapes that spark the imagination. Some resemble castles, while others look like animals on a great journey. As the sun sets, they turn shades of pink and gold, painting a masterpiece in the sky.",
	"The desert may seem empty, but it is teeming with life. Cacti store water for dry days, while foxes and snakes adapt to the heat. At night, the sky fills with stars, shining brighter than in any city. The desert is a land of quiet resilience.",
	"Farms are the heart of food production, where crops grow under the sun's watchful eye. Farmers wake up early to care for their animals and fields. A fresh harvest brings satisfaction, knowing that hard work has paid off. Every meal has a story that starts on a farm.",
	"Zoos are places of learning and conservation. Visitors marvel at lions, giraffes, and penguins from distant lands. Scientists work to protect endangered species and restore habitats. Seeing these creatures up close deepens our appreciation for wildlife and the need to protect it.",
	"A clear night sky is a gateway to the universe's wonders. Stars twinkle like tiny lanterns, and planets shine in the distance. With a telescope, the rings of Saturn and the craters of the moon come into view. The cosmos is a vast mystery waiting to be explored.",
}

// Paragraphs returns a copy of the built-in paragraph catalog.
func Paragraphs() []string {
	out := make([]string, len(builtinParagraphs))
	copy(out, builtinParagraphs)
	return out
}
